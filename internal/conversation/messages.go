package conversation

const welcomeText = "Hi! Welcome to Bank of Kigali Chatbot!"

const menuText = "How can I help you today? Please choose an option:\n\n" +
	"1️⃣  Reset my PIN code\n" +
	"2️⃣  Ask a question about Bank of Kigali\n" +
	"3️⃣  Contact customer service\n\n" +
	"Type the number or just describe what you need!"

const languageMenuText = "I'd be happy to help! First, please choose your preferred language:\n\n" +
	"1️⃣  English\n" +
	"2️⃣  French\n" +
	"3️⃣  Kinyarwanda\n\n" +
	"Type the number or the language name."

const languageRetryText = "Please choose a valid option:\n1️⃣ English\n2️⃣ French\n3️⃣ Kinyarwanda"

const (
	pinResetStartText  = "Sure! I'll help you reset your PIN. \nFirst, what is your full name?"
	pinResetSwitchText = "Sure! Let's switch to PIN reset. \nWhat is your full name?"
	askQuestionText    = "Sure! What would you like to know about Bank of Kigali?"

	accountPromptText = "Now, what is your account number? (e.g., 040-xxxxxxx-xx)"
	dobPromptText     = "Got it. What is your date of birth? (MM-DD-YYYY)"
	phonePromptText   = "And finally, what is your phone number? (e.g., 2507xxxxxxxx)"

	identityMismatchText = "The details you provided don't match our records. Please check and try again.\n\nType 'menu' to go back to the main menu."

	emailPromptText   = "Please enter your email address:"
	emailMismatchText = "The email you entered does not match our records. Please try again:"
	emailFailedText   = "Error sending email. Please try again or type 'menu'."

	otpVerifiedText  = "OTP verified! Now, please enter your new 4-digit PIN code.\nAvoid using repeated digits (e.g., 0000) or consecutive numbers (e.g., 1234)."
	otpExhaustedText = "Too many failed attempts. Session closed for security.\n\nType 'menu' to start over."

	confirmPinPromptText = "Please confirm your new PIN code."
	pinMismatchText      = "PIN codes don't match. Let's try again.\nPlease enter your new PIN code."
	pinCommittedText     = "Your PIN has been reset successfully!\nThank you for using Bank of Kigali chatbot service.\n\nType 'menu' if you need anything else."

	apologyText = "Sorry, I encountered an error. Please try again or type 'menu'."

	queryHintText   = "\n\nType 'menu' to see options or keep asking questions!"
	faqFollowUpText = "\n\nAsk another question or type 'menu' to go back."
	rateLimitedText = "You've hit the API rate limit. Please wait a moment and try again, or type 'menu'."
)

var complaintPrompts = map[string]string{
	"English":     "Great! Please describe your complaint or question and I'll find an answer for you.",
	"French":      "Très bien! Veuillez décrire votre plainte ou question et je trouverai une réponse pour vous.",
	"Kinyarwanda": "Byiza! Nyamuneka sobanura ikibazo cyawe kandi nzakushakira igisubizo.",
}

var faqNoMatchTexts = map[string]string{
	"English": "I couldn't find a matching answer in our FAQ.\n" +
		"You can reach Bank of Kigali customer service directly:\n\n" +
		"• Call: (+250) 788 143 000\n" +
		"• Email: info@bk.rw\n" +
		"• Website: https://www.bk.rw\n" +
		"• Visit any BK branch (Mon-Fri 8AM-5PM, Sat 8AM-12PM)\n\n" +
		"Type 'menu' to go back to the main menu.",
	"French": "Je n'ai pas trouvé de réponse correspondante dans notre FAQ.\n" +
		"Vous pouvez contacter le service client de la Banque de Kigali :\n\n" +
		"• Appel : (+250) 788 143 000\n" +
		"• Email : info@bk.rw\n" +
		"• Site web : https://www.bk.rw\n" +
		"• Visitez une agence BK (Lun-Ven 8h-17h, Sam 8h-12h)\n\n" +
		"Tapez 'menu' pour revenir au menu principal.",
	"Kinyarwanda": "Sinashoboye kubona igisubizo gihuye n'ikibazo cyawe muri FAQ yacu.\n" +
		"Ushobora guhamagara serivisi y'abakiriya ya Banki ya Kigali:\n\n" +
		"• Telefoni: (+250) 788 143 000\n" +
		"• Imeyili: info@bk.rw\n" +
		"• Urubuga: https://www.bk.rw\n" +
		"• Sura ishami rya BK iri hafi yawe (Kuwa 1-5: 8h-17h, Kuwa 6: 8h-12h)\n\n" +
		"Andika 'menu' kugira ngo usubire ku ibiciro by'ibanze.",
}

var languageTokens = map[string]string{
	"1": "English", "1.": "English", "english": "English", "en": "English",
	"2": "French", "2.": "French", "french": "French", "fr": "French", "français": "French",
	"3": "Kinyarwanda", "3.": "Kinyarwanda", "kinyarwanda": "Kinyarwanda", "kiny": "Kinyarwanda", "rw": "Kinyarwanda",
}

const oracleSystemPrompt = `You are a helpful and professional Bank of Kigali (BK) customer service chatbot.
Use accurate, up-to-date information from bk.rw and other reliable sources.
Be polite, professional, and concise (2-5 sentences unless more detail is needed).
If the question is completely unrelated to banking or BK, politely redirect the user.
Respond in the same language the user writes in (English, French, or Kinyarwanda).`
