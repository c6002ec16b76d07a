package catalog

import "github.com/MKhiriev/fraud-shield/models"

func defaultCategories() []models.NewsCategory {
	return []models.NewsCategory{
		{ID: CategoryAll, Name: "All News"},
		{ID: "phishing", Name: "Phishing"},
		{ID: "crypto", Name: "Cryptocurrency"},
		{ID: "payment", Name: "Payment Fraud"},
		{ID: "social", Name: "Social Engineering"},
		{ID: "malware", Name: "Malware"},
		{ID: "business", Name: "Business Fraud"},
	}
}

func defaultGames() []models.GameInfo {
	return []models.GameInfo{
		{ID: StoryGameID, Title: "The Phishing Email Story", Difficulty: "Medium", XP: 300, Icon: "📧"},
		{ID: "phishing-email-detective", Title: "Phishing Email Detective", Difficulty: "Easy", XP: 100, Icon: "🎣"},
		{ID: "fake-website-spotter", Title: "Fake Website Spotter", Difficulty: "Medium", XP: 200, Icon: "🌐"},
		{ID: "social-engineering-defense", Title: "Social Engineering Defense", Difficulty: "Hard", XP: 300, Icon: "🎭"},
	}
}

func defaultArticles() []models.NewsArticle {
	return []models.NewsArticle{
		{
			ID:          1,
			Title:       "New Phishing Campaign Targets Mobile Banking Users",
			Description: "Security researchers have identified a sophisticated phishing campaign targeting major banking apps. Attackers are using fake SMS messages claiming account suspension.",
			Source:      "CyberSecurity Today",
			Category:    "phishing",
			Severity:    models.SeverityHigh,
			Date:        "2 hours ago",
			ReadTime:    "5 min read",
			Icon:        "🎣",
		},
		{
			ID:          2,
			Title:       "Fake Crypto Investment Apps Removed from App Stores",
			Description: "Over 40 fraudulent cryptocurrency investment applications were discovered and removed. These apps promised high returns but stole user funds.",
			Source:      "Fraud Alert Network",
			Category:    "crypto",
			Severity:    models.SeverityHigh,
			Date:        "5 hours ago",
			ReadTime:    "4 min read",
			Icon:        "₿",
		},
		{
			ID:          3,
			Title:       "QR Code Scams Rise 300% in Restaurant Payments",
			Description: "Criminals are replacing legitimate restaurant QR codes with malicious ones, redirecting payments to their own accounts.",
			Source:      "Payment Safety News",
			Category:    "payment",
			Severity:    models.SeverityMedium,
			Date:        "1 day ago",
			ReadTime:    "6 min read",
			Icon:        "📷",
		},
		{
			ID:          4,
			Title:       "AI Voice Cloning Used in Recent Social Engineering Attacks",
			Description: "Scammers are now using AI to clone voices of executives and family members to trick victims into transferring money.",
			Source:      "Tech Security Report",
			Category:    "social",
			Severity:    models.SeverityHigh,
			Date:        "2 days ago",
			ReadTime:    "7 min read",
			Icon:        "🤖",
		},
		{
			ID:          5,
			Title:       "Romance Scam Networks Exposed Across Multiple Platforms",
			Description: "International operation shuts down networks responsible for billions in losses through dating app scams.",
			Source:      "Global Fraud Watch",
			Category:    "social",
			Severity:    models.SeverityMedium,
			Date:        "3 days ago",
			ReadTime:    "8 min read",
			Icon:        "💔",
		},
		{
			ID:          6,
			Title:       "New Malware Steals Banking Credentials Through Fake Updates",
			Description: "A new strain of malware disguises itself as system updates to steal banking credentials and two-factor authentication codes.",
			Source:      "Malware Analysis Lab",
			Category:    "malware",
			Severity:    models.SeverityHigh,
			Date:        "4 days ago",
			ReadTime:    "5 min read",
			Icon:        "🦠",
		},
		{
			ID:          7,
			Title:       "Invoice Fraud Costs Businesses $2.4 Billion This Quarter",
			Description: "Business email compromise and fake invoice schemes continue to target finance departments globally.",
			Source:      "Corporate Security Today",
			Category:    "business",
			Severity:    models.SeverityHigh,
			Date:        "5 days ago",
			ReadTime:    "6 min read",
			Icon:        "💼",
		},
		{
			ID:          8,
			Title:       "Fake Job Offer Scams Increase on Professional Networks",
			Description: "Scammers are creating fake recruiter profiles and job postings to steal personal information and money from job seekers.",
			Source:      "Employment Fraud Alert",
			Category:    "social",
			Severity:    models.SeverityMedium,
			Date:        "1 week ago",
			ReadTime:    "5 min read",
			Icon:        "👔",
		},
	}
}
