package questionbank

// agentBank is the individual agent assessment: ten questions worth ten
// points each across three categories.
var agentBank = &Bank{
	ID:             BankAgent,
	Name:           "Agent Performance Assessment",
	BenchmarkScore: 100,
	Categories: []Category{
		{ID: "process_efficiency", Label: "Process Efficiency"},
		{ID: "risk_management", Label: "Risk Management"},
		{ID: "client_experience", Label: "Client Experience"},
	},
	Questions: []Question{
		{
			ID:       "deadline_tracking",
			Category: "risk_management",
			Weight:   10,
			Options: map[string]int{
				"I have an automated system that calculates both types and sends alerts":          10,
				"I manually track on a spreadsheet/calendar with notes about which is which":      7,
				"I count them out as each deadline approaches":                                    4,
				"I rely on my TC or escrow officer to remind me of upcoming deadlines":            2,
			},
			Benchmark: "I have an automated system that calculates both types and sends alerts",
		},
		{
			ID:       "client_timeline",
			Category: "client_experience",
			Weight:   10,
			Options: map[string]int{
				"Yes, I provide a comprehensive written timeline document with all milestones explained": 10,
				"I verbally walk them through the process but don't provide a written timeline":          6,
				"I send updates as we hit each milestone during the transaction":                         5,
				"Clients reach out to me when they need updates on what's happening":                     2,
			},
			Benchmark: "Yes, I provide a comprehensive written timeline document with all milestones explained",
		},
		{
			ID:       "after_hours_communication",
			Category: "client_experience",
			Weight:   10,
			Options: map[string]int{
				"They have 24/7 access to transaction information through technology I provide": 10,
				"They text or call me, and I respond when I'm available":                        7,
				"They wait until the next business day to contact me":                           4,
				"They usually figure it out or ask friends/family":                              1,
			},
			Benchmark: "They have 24/7 access to transaction information through technology I provide",
		},
		{
			ID:       "cross_document_analysis",
			Category: "process_efficiency",
			Weight:   10,
			Options: map[string]int{
				"I use technology that automatically flags conflicts and inconsistencies across documents": 10,
				"I read everything carefully and take detailed notes to cross-reference":                   8,
				"I focus on reading the key sections of each document type":                                5,
				"I rely on title companies and escrow to catch major issues":                               2,
			},
			Benchmark: "I use technology that automatically flags conflicts and inconsistencies across documents",
		},
		{
			ID:       "document_review_thoroughness",
			Category: "process_efficiency",
			Weight:   10,
			Options: map[string]int{
				"100% - I read every page of every document in every transaction":  10,
				"75-99% - I read most documents thoroughly with rare exceptions":   8,
				"50-74% - I read critical sections and skim the rest":              5,
				"Under 50% - I focus on key points and action items":               2,
			},
			Benchmark: "100% - I read every page of every document in every transaction",
		},
		{
			ID:       "broker_oversight",
			Category: "risk_management",
			Weight:   10,
			Options: map[string]int{
				"Yes, every document gets reviewed for errors and compliance":    10,
				"Only on complex transactions or deals above a certain value":    6,
				"Occasionally or on a random sampling basis":                     3,
				"No, I'm responsible for reviewing my own transactions":          1,
			},
			Benchmark: "Yes, every document gets reviewed for errors and compliance",
		},
		{
			ID:       "issue_communication",
			Category: "client_experience",
			Weight:   10,
			Options: map[string]int{
				"I proactively identify and explain potential issues in clear terms before they become problems": 10,
				"I communicate issues when they're officially brought to my attention by other parties":          6,
				"I mention them if they seem significant enough to affect the transaction":                       4,
				"I handle most issues behind the scenes to avoid worrying clients unnecessarily":                 2,
			},
			Benchmark: "I proactively identify and explain potential issues in clear terms before they become problems",
		},
		{
			ID:       "technology_advantage",
			Category: "process_efficiency",
			Weight:   10,
			Options: map[string]int{
				"AI-powered transaction intelligence that provides 24/7 client access and proactive alerts": 10,
				"A robust CRM system with automated email updates and reminders":                            7,
				"Standard MLS and transaction management software that most agents use":                     4,
				"I differentiate through personal service and responsiveness, not technology":               3,
			},
			Benchmark: "AI-powered transaction intelligence that provides 24/7 client access and proactive alerts",
		},
		{
			ID:       "client_retention",
			Category: "client_experience",
			Weight:   10,
			Options: map[string]int{
				"75-100% - Most of my business is repeat and referral based":               10,
				"50-74% - About half of my business comes from past clients":               7,
				"25-49% - I get some repeat business but mostly work with new clients":     4,
				"Under 25% - I'm primarily working with first-time clients":                2,
			},
			Benchmark: "75-100% - Most of my business is repeat and referral based",
		},
		{
			ID:       "transaction_failures",
			Category: "risk_management",
			Weight:   10,
			Options: map[string]int{
				"No - I've never had a deal fall through due to missed deadlines or had an E&O claim":       10,
				"I've had deals delayed or stressed due to timeline confusion, but nothing catastrophic":    6,
				"I've lost at least one deal due to missed contingency deadlines or contract issues":        3,
				"I've had an E&O claim or near-miss related to documentation or deadline errors":            0,
			},
			Benchmark: "No - I've never had a deal fall through due to missed deadlines or had an E&O claim",
		},
	},
	Tiers: []Tier{
		{
			MinPercent:     85,
			Profile:        "Elite Agent",
			RiskLevel:      RiskLow,
			PercentileRank: "Top 10%",
			Summary:        "You operate at the highest industry standard with exceptional systems, communication, and client service. You're in the top 10% of agents nationally.",
		},
		{
			MinPercent:     70,
			Profile:        "High Performer",
			RiskLevel:      RiskModerate,
			PercentileRank: "Top 25%",
			Summary:        "You have strong professional fundamentals with good systems and client communication. You're in the top 25% nationally, with clear opportunities for optimization.",
		},
		{
			MinPercent:     50,
			Profile:        "Moderate Risk",
			RiskLevel:      RiskHigh,
			PercentileRank: "Average (50th percentile)",
			Summary:        "You're performing at the national average with significant areas for improvement. Better systems and technology could dramatically improve your efficiency and client satisfaction.",
		},
		{
			MinPercent:     0,
			Profile:        "High Risk",
			RiskLevel:      RiskCritical,
			PercentileRank: "Below Average",
			Summary:        "Your practice has substantial gaps in systems, communication, and risk management. Immediate improvements are needed to protect your business and provide better client service.",
		},
	},
}
