package story

// DefaultScenes returns the bundled phishing story.
func DefaultScenes() []Scene {
	return []Scene{
		{
			ID:          0,
			Title:       "The Unexpected Email",
			Description: "You receive an email claiming to be from your bank. The subject line reads: 'URGENT: Account Security Alert - Action Required Immediately'. The email states that suspicious activity has been detected on your account and you need to verify your identity within 24 hours or your account will be suspended.",
			Icon:        "📧",
			Choices: []Choice{
				{Text: "Click the link in the email to verify my account", Next: 1},
				{Text: "Call the bank using the number on their official website", Next: 2, Correct: true},
				{Text: "Reply to the email asking for more details", Next: 3},
			},
		},
		{
			ID:          1,
			Title:       "The Fake Website",
			Description: "You clicked the link and it took you to what looks like your bank's website. However, you notice the URL is slightly different - it's 'bankofindia-secure.com' instead of 'bankofindia.com'. The site is asking for your username, password, and OTP.",
			Icon:        "🌐",
			Feedback:    "Warning! This was a phishing attempt. The link led to a fake website designed to steal your credentials.",
			Choices: []Choice{
				{Text: "Enter my credentials - the site looks legitimate", Next: 4},
				{Text: "Close the browser and report this to my bank", Next: 5, Correct: true},
				{Text: "Enter fake credentials to test if it's real", Next: 6},
			},
		},
		{
			ID:          2,
			Title:       "The Verification Call",
			Description: "You called your bank using the official number from their website. The customer service representative confirms there is NO suspicious activity on your account and no email was sent by them. They thank you for being vigilant and confirm your account is completely safe.",
			Icon:        "✅",
			Feedback:    "Excellent decision! You successfully avoided a phishing scam by verifying through official channels.",
			Choices: []Choice{
				{Text: "Report the phishing email to the bank", Next: 7, Correct: true},
				{Text: "Delete the email and move on", Next: 8},
			},
		},
		{
			ID:          3,
			Title:       "The Scammer's Response",
			Description: "You replied to the email. Within minutes, you receive a response with urgent language pressuring you to 'click here immediately' or face account closure. The email now claims you have only 2 hours left.",
			Icon:        "⚠️",
			Feedback:    "Replying to suspicious emails can confirm your email address is active, leading to more scam attempts.",
			Choices: []Choice{
				{Text: "Ignore and delete all emails from this sender", Next: 7, Correct: true},
				{Text: "Click the link to get it over with", Next: 4},
			},
		},
		{
			ID:          4,
			Title:       "Account Compromised!",
			Description: "You entered your credentials on the fake website. Within hours, your account shows unauthorized transactions totaling ₹45,000. The scammers now have access to your banking credentials and personal information.",
			Icon:        "🚨",
			Feedback:    "This was the worst possible outcome. Never enter credentials on suspicious websites!",
			Terminal:    true,
		},
		{
			ID:          5,
			Title:       "Crisis Averted",
			Description: "You closed the browser immediately and called your bank to report the phishing attempt. They assured you that your account is safe and added extra security monitoring. They also thanked you for reporting it, as it helps them alert other customers.",
			Icon:        "🛡️",
			Feedback:    "Perfect! You took all the right steps to protect yourself.",
			Terminal:    true,
		},
		{
			ID:          6,
			Title:       "Tracked by Scammers",
			Description: "Even though you entered fake credentials, the scammers now know your email is active and you're engaging with their phishing attempts. You start receiving multiple scam emails daily across different topics.",
			Icon:        "📨",
			Feedback:    "Never engage with phishing sites, even to test them. This marks you as a potential target.",
			Terminal:    true,
		},
		{
			ID:          7,
			Title:       "Cyber Hero",
			Description: "You reported the phishing email to your bank. They immediately sent out alerts to all customers about this specific scam, potentially saving thousands of people from falling victim. Your vigilance made a real difference!",
			Icon:        "🏆",
			Feedback:    "Outstanding! Reporting scams helps protect the entire community.",
			Terminal:    true,
		},
		{
			ID:          8,
			Title:       "Missed Opportunity",
			Description: "While you stayed safe, other customers may have fallen for the same scam. Reporting helps banks and authorities track and shut down these operations.",
			Icon:        "⚡",
			Feedback:    "Always report phishing attempts - you could help save others from becoming victims.",
			Terminal:    true,
		},
	}
}

// DefaultQuiz returns the bundled quiz.
func DefaultQuiz() []QuizQuestion {
	return []QuizQuestion{
		{
			ID:       1,
			Question: "What is the FIRST thing you should do when receiving an urgent email from your bank?",
			Options: []string{
				"Click the link immediately to protect your account",
				"Verify by contacting the bank through their official channels",
				"Forward the email to friends to ask their opinion",
				"Reply to the email asking if it's legitimate",
			},
			CorrectAnswer: 1,
			Explanation:   "Always verify suspicious emails by contacting the organization directly through official channels (phone number on their website, official app, etc.). Never use contact information provided in the suspicious email.",
		},
		{
			ID:       2,
			Question: "What is a common red flag in phishing emails?",
			Options: []string{
				"Personalized greeting with your name",
				"Links to the official website",
				"Urgent language and threats of account closure",
				"Professional email formatting",
			},
			CorrectAnswer: 2,
			Explanation:   "Phishing emails often use urgent language, threats, and time pressure to make you act without thinking. Legitimate organizations rarely threaten immediate account closure.",
		},
		{
			ID:       3,
			Question: "How can you identify a fake website URL?",
			Options: []string{
				"By checking if it has HTTPS",
				"By looking for slight misspellings or extra characters in the domain",
				"By seeing if it has a professional design",
				"By checking if it asks for a password",
			},
			CorrectAnswer: 1,
			Explanation:   "Scammers often create URLs that look similar to legitimate ones but with slight variations (e.g., 'bankofindia-secure.com' instead of 'bankofindia.com'). Always check the domain name carefully.",
		},
		{
			ID:       4,
			Question: "What should you do if you accidentally entered your credentials on a phishing site?",
			Options: []string{
				"Wait and see if anything happens",
				"Delete your browser history",
				"Immediately change your password and contact your bank",
				"Install antivirus software",
			},
			CorrectAnswer: 2,
			Explanation:   "If you've entered credentials on a phishing site, act immediately: change your passwords, contact your bank/organization, enable 2FA if available, and monitor your accounts closely.",
		},
		{
			ID:       5,
			Question: "Why is it important to report phishing attempts?",
			Options: []string{
				"To get a reward from the bank",
				"It's not important, just delete them",
				"To help authorities shut down scams and protect others",
				"To receive security updates",
			},
			CorrectAnswer: 2,
			Explanation:   "Reporting phishing attempts helps organizations alert other customers, track scam patterns, and work with authorities to shut down these operations. Your report could save many others from becoming victims.",
		},
	}
}

// NewDefaultSession validates the bundled content and starts a session
// over it.
func NewDefaultSession() (*Session, error) {
	graph, err := NewGraph(DefaultScenes())
	if err != nil {
		return nil, err
	}
	quiz := DefaultQuiz()
	if err = ValidateQuiz(quiz); err != nil {
		return nil, err
	}
	return NewSession(graph, quiz), nil
}
