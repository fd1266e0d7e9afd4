package bot

const (
	botLogPrefix = "[telehealth-bot]"

	logContentPreviewLen = 160

	replyGreeting = "Hello! I'm your Telehealth AI assistant.\n" +
		"Type /begin when you’re ready to provide your health data."

	replyOnboarding = "Welcome to Happy Healthy Heart by CloseAI!\n\n" +
		"Please provide your information for example:\n\n" +
		"(You can just copy the chat bubble below and alter the data)"

	replyExample = "Blood pressure: 120/100\nBlood glucose: 100\nStress level: 2/10"

	replyCannotParse = "I couldn't understand your input. Please try again."
)
