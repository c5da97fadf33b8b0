package questionbank

// brokerOpsBank is the expanded brokerage operations questionnaire.
// Five scored categories total 467 points; the growth readiness
// category is a bonus and does not count toward the overall score.
var brokerOpsBank = &Bank{
	ID:             BankBrokerOps,
	Name:           "Brokerage Operations Assessment",
	BenchmarkScore: 100,
	Categories: []Category{
		{ID: "transaction_oversight", Label: "Transaction Oversight Excellence"},
		{ID: "operational_systems", Label: "Operational Systems Maturity"},
		{ID: "knowledge_management", Label: "Knowledge Management & Training"},
		{ID: "client_experience", Label: "Client Experience & Transparency"},
		{ID: "risk_management", Label: "Risk Management & Protection"},
		{ID: "growth_readiness", Label: "Growth Acceleration", Bonus: true},
	},
	Questions: []Question{
		{
			ID:       "contract_oversight",
			Text:     "Who is responsible for contract oversight in your brokerage?",
			Category: "transaction_oversight",
			Weight:   33,
			Options: map[string]int{
				"Agent only":                      5,
				"Transaction Coordinator only":    10,
				"Broker only":                     15,
				"TC + Broker share":               25,
				"Everyone + AI verification":      33,
			},
			Benchmark: "Everyone + AI verification",
		},
		{
			ID:       "document_review_time",
			Text:     "How long does it take to effectively review ALL documents in a typical transaction?",
			Category: "transaction_oversight",
			Weight:   33,
			Options: map[string]int{
				"5+ hours":                  5,
				"3-5 hours":                 10,
				"2-3 hours":                 15,
				"1-2 hours":                 25,
				"Under 30 minutes with AI":  33,
			},
			Benchmark: "Under 30 minutes with AI",
		},
		{
			ID:       "agent_document_reading",
			Text:     "Are agents expected to read every line of HOAs, title reports, inspection reports? If yes, what percentage actually do it?",
			Category: "transaction_oversight",
			Weight:   34,
			Options: map[string]int{
				"Not expected to":            0,
				"Expected but <25% do":       5,
				"Expected but 25-50% do":     10,
				"Expected but 50-75% do":     20,
				"Expected and >75% do":       28,
				"AI reads everything, agents review summaries": 34,
			},
			Benchmark: "AI reads everything, agents review summaries",
		},
		{
			ID:       "deadline_tracking_system",
			Text:     "Do you have a system to track all transaction deadlines?",
			Category: "operational_systems",
			Weight:   33,
			Options: map[string]int{
				"No system - agent responsibility": 5,
				"Manual calendars/spreadsheets":    10,
				"Basic transaction software":       20,
				"Automated deadline tracking":      28,
				"AI-extracted with smart alerts":   33,
			},
			Benchmark: "AI-extracted with smart alerts",
		},
		{
			ID:       "missed_deadlines",
			Text:     "How many transaction deadlines were missed last quarter?",
			Category: "operational_systems",
			Weight:   33,
			Options: map[string]int{
				"Not tracked": 0,
				"10+":         5,
				"6-10":        10,
				"3-5":         18,
				"1-2":         25,
				"None":        33,
			},
			Benchmark: "None",
		},
		{
			ID:       "deal_losses",
			Text:     "Have you ever lost a deal or made brokerage concessions at closing due to issues identified too late?",
			Category: "operational_systems",
			Weight:   34,
			Options: map[string]int{
				"Too often to count":                   0,
				"Frequently (10+ times per year)":      5,
				"Regularly (6-10 times per year)":      10,
				"Occasionally (3-5 times per year)":    18,
				"Rarely (1-2 times per year)":          25,
				"Never happens":                        34,
			},
			Benchmark: "Never happens",
		},
		{
			ID:       "agent_training_frequency",
			Text:     "How often do you conduct mandatory agent training on forms/contracts?",
			Category: "knowledge_management",
			Weight:   33,
			Options: map[string]int{
				"Never - agents learn on their own":         0,
				"Annually":                                  10,
				"Quarterly":                                 18,
				"Monthly":                                   25,
				"Weekly/Ongoing":                            30,
				"AI provides real-time guidance instead":    33,
			},
			Benchmark: "AI provides real-time guidance instead",
		},
		{
			ID:       "procedure_questions",
			Text:     "When agents have questions about company procedures or standards, they:",
			Category: "knowledge_management",
			Weight:   33,
			Options: map[string]int{
				"Figure it out themselves":         5,
				"Ask whoever's available":          10,
				"Check scattered emails/documents": 15,
				"Access a central knowledge base":  25,
				"Get instant AI-powered answers":   33,
			},
			Benchmark: "Get instant AI-powered answers",
		},
		{
			ID:       "legal_questions",
			Text:     "When contract or state law questions arise, your agents:",
			Category: "knowledge_management",
			Weight:   34,
			Options: map[string]int{
				"Google it":                                2,
				"Call the broker (interrupting their day)": 8,
				"Consult external legal hotline ($$$)":     15,
				"Search internal resources":                23,
				"AI instantly provides cited answers":      34,
			},
			Benchmark: "AI instantly provides cited answers",
		},
		{
			ID:       "client_deadlines_breakdown",
			Text:     "Do you provide clients with a comprehensive breakdown of their deadlines and responsibilities?",
			Category: "client_experience",
			Weight:   33,
			Options: map[string]int{
				"No formal system":                0,
				"Agent explains verbally":         8,
				"Email key dates as needed":       15,
				"Standard timeline template":      22,
				"Digital portal with all dates":   28,
				"AI-powered dashboard with alerts": 33,
			},
			Benchmark: "AI-powered dashboard with alerts",
		},
		{
			ID:       "client_document_understanding",
			Text:     "What percentage of your clients actually read and understand all transaction documents?",
			Category: "client_experience",
			Weight:   33,
			Options: map[string]int{
				"Under 10%": 3,
				"10-25%":    10,
				"25-50%":    17,
				"50-75%":    24,
				"Over 75%":  29,
				"We ensure understanding with AI summaries": 33,
			},
			Benchmark: "We ensure understanding with AI summaries",
		},
		{
			ID:       "brokerage_liability",
			Text:     "How much liability does your brokerage assume for ensuring clients fully understand all documents?",
			Category: "client_experience",
			Weight:   34,
			Options: map[string]int{
				"Complete liability - it's on us":        5,
				"Significant liability":                  10,
				"Moderate - shared with agent":           18,
				"Minimal - client signs they've read":    23,
				"Protected - we document everything":     28,
				"Protected with AI-verified comprehension": 34,
			},
			Benchmark: "Protected with AI-verified comprehension",
		},
		{
			ID:       "revenue_loss",
			Text:     "Estimated revenue lost to missed deadlines/failed deals last year?",
			Category: "risk_management",
			Weight:   33,
			Options: map[string]int{
				"Not calculated": 0,
				"Over $500K":     5,
				"$200K-$500K":    12,
				"$100K-$200K":    20,
				"$50K-$100K":     27,
				"Under $50K":     33,
			},
			Benchmark: "Under $50K",
		},
		{
			ID:       "eo_claims",
			Text:     "Number of E&O claims in last 3 years?",
			Category: "risk_management",
			Weight:   34,
			Options: map[string]int{
				"5+":  5,
				"3-4": 15,
				"1-2": 25,
				"0":   30,
				"0 with proactive monitoring": 34,
			},
			Benchmark: "0 with proactive monitoring",
		},
		{
			ID:       "verified_seller_leads",
			Text:     "If you could receive 100% verified seller leads (only pay at contract), would you be interested?",
			Category: "growth_readiness",
			Weight:   33,
			Options: map[string]int{
				"No, we can't handle more volume": 0,
				"Probably not":                    5,
				"Maybe, need more details":        15,
				"Yes, depending on pricing":       25,
				"Absolutely - sign us up":         33,
			},
			Benchmark: "Absolutely - sign us up",
		},
		{
			ID:       "lead_followup_system",
			Text:     "Do you have a system to ensure agents follow up with leads in a timely manner?",
			Category: "growth_readiness",
			Weight:   34,
			Options: map[string]int{
				"No system - trust agents to handle": 0,
				"Manual tracking by managers":        8,
				"Basic CRM reminders":                15,
				"Automated follow-up sequences":      22,
				"AI-powered lead nurturing":          28,
				"Full automation with accountability": 34,
			},
			Benchmark: "Full automation with accountability",
		},
	},
	Tiers: []Tier{
		{
			MinPercent:     85,
			Profile:        "Industry Leader",
			RiskLevel:      RiskLow,
			PercentileRank: "Top 5%",
			Summary:        "Your brokerage operates at the highest industry standard with AI-enhanced systems, comprehensive oversight, and documented client education. You're in the top 5% of brokerages nationally.",
		},
		{
			MinPercent:     70,
			Profile:        "Well-Managed Operation",
			RiskLevel:      RiskModerate,
			PercentileRank: "Top 25%",
			Summary:        "Your brokerage has strong fundamentals with good oversight and training. You're in the top 25% nationally, but could benefit from increased automation and client engagement tools.",
		},
		{
			MinPercent:     50,
			Profile:        "Average with Gaps",
			RiskLevel:      RiskHigh,
			PercentileRank: "Top 50%",
			Summary:        "Your brokerage is performing at the national average, but has significant risk exposure. Better systems and oversight would reduce liability and recover lost revenue.",
		},
		{
			MinPercent:     0,
			Profile:        "High-Risk Operation",
			RiskLevel:      RiskCritical,
			PercentileRank: "Bottom 50%",
			Summary:        "Your brokerage has substantial risk exposure with minimal systematic oversight. Immediate systematic changes are essential to protect the business.",
		},
	},
}
