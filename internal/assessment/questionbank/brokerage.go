package questionbank

// brokerageBank is the original brokerage risk assessment: twelve
// weighted questions totaling 100 points across four categories.
var brokerageBank = &Bank{
	ID:             BankBrokerage,
	Name:           "Brokerage Risk Assessment",
	BenchmarkScore: 100,
	Categories: []Category{
		{ID: "process_efficiency", Label: "Process Efficiency"},
		{ID: "risk_management", Label: "Risk Management"},
		{ID: "client_experience", Label: "Client Experience"},
		{ID: "training_knowledge", Label: "Training & Knowledge"},
	},
	Questions: []Question{
		{
			ID:       "contract_review_process",
			Category: "process_efficiency",
			Weight:   8,
			Options: map[string]int{
				"Broker & TC - TC reviews, Broker supervises":       8,
				"Designated Broker - Broker reviews everything":     6,
				"Transaction Coordinator - TC handles all reviews":  5,
				"Agent - Each agent handles their own":              2,
				"No formal process - varies by transaction":         0,
			},
			Benchmark: "Broker & TC - TC reviews, Broker supervises",
		},
		{
			ID:       "contract_review_time",
			Category: "process_efficiency",
			Weight:   7,
			Options: map[string]int{
				"Under 30 Minutes - Quick, systemic Review":     7,
				"30 - 1 Hour - Thorough manual review":          5,
				"1-2 Hours - Detailed Line by Line (Standard)":  4,
				"2-3 Hours - Very Time Intensive":               2,
				"3+ Hours - Extremely Complex & Time Consuming": 1,
				"Varies - No Specific Systems in Place":         0,
			},
			Benchmark: "Under 30 Minutes - Quick, systemic Review",
		},
		{
			ID:       "document_review_process",
			Category: "process_efficiency",
			Weight:   9,
			Options: map[string]int{
				"TC/Broker reviews for them - Agents get summaries/highlights": 9,
				"Agents read everything - Required and consistently done":      7,
				"Agents are supposed to… But most skim or skip sections":       3,
				"Agents handle their own way - No formal policy or oversight":  1,
				"Honestly? Nobody reads them all, too time consuming. Cross fingers and pray.": 0,
			},
			Benchmark: "TC/Broker reviews for them - Agents get summaries/highlights",
		},
		{
			ID:       "deadline_tracking_method",
			Category: "risk_management",
			Weight:   10,
			Options: map[string]int{
				"Automated deadline tracking - System extracts and monitors dates automatically":               10,
				"Centralized TC/Admin system - TC manually enters all dates into shared calendar/system":       7,
				"Shared calendar/spreadsheet - Agents update their own dates in shared system":                 4,
				"Each agent uses their own - Personal calendar/reminders. No centralized tracking":             2,
				"Manual - paper/memory based. Agents track on paper or rely on memory":                         0,
				"No formal tracking system - Varies by agent":                                                  0,
			},
			Benchmark: "Automated deadline tracking - System extracts and monitors dates automatically",
		},
		{
			ID:       "deadline_impact",
			Category: "risk_management",
			Weight:   10,
			Options: map[string]int{
				"No - clean track record. Zero lost deals or concessions":    10,
				"Close calls, but no losses. Caught issues just in time":     7,
				"1-2 deals impacted - Minor financial impact":                4,
				"3-5 deals lost or concessions - Significant financial impact": 2,
				"5+ deals affected - Major ongoing problem":                  0,
				"We don't track this data - No formal tracking system":       0,
			},
			Benchmark: "No - clean track record. Zero lost deals or concessions",
		},
		{
			ID:       "training_frequency",
			Category: "training_knowledge",
			Weight:   6,
			Options: map[string]int{
				"Monthly - ongoing education, regular reinforcement":          6,
				"Quarterly - seasonal updates. Around four times per year":    5,
				"Twice per year - Semi-annual training":                       3,
				"Annually - once per year. Meets minimum requirement":         2,
				"Only during initial onboarding - No ongoing training":        0,
				"Honestly, we're behind. Struggle to keep up with it":         0,
			},
			Benchmark: "Monthly - ongoing education, regular reinforcement",
		},
		{
			ID:       "agent_question_handling",
			Category: "process_efficiency",
			Weight:   7,
			Options: map[string]int{
				"Check our knowledge system - Instant self-service answers": 7,
				"Search internal docs/wiki - Company resources available":   5,
				"Email or Slack the Broker/TC - Wait for response":          3,
				"Call/text broker or TC - Interrupt for immediate answer":   2,
				"Ask other agents - Hope someone knows":                     1,
				"Google it or wing it - Figure it out themselves":           0,
			},
			Benchmark: "Check our knowledge system - Instant self-service answers",
		},
		{
			ID:       "client_timeline_communication",
			Category: "client_experience",
			Weight:   8,
			Options: map[string]int{
				"Automated client portal - Real-time timeline with updates":  8,
				"Custom timeline document - Personalized for their transaction": 6,
				"Generic checklist/guide - Standard document for all clients": 4,
				"Agent sends periodic updates - Email/text as things progress": 3,
				"Verbal communication only - Agent explains during calls":    1,
				"Clients figure it out - They ask when confused":             0,
			},
			Benchmark: "Automated client portal - Real-time timeline with updates",
		},
		{
			ID:       "client_document_reading",
			Category: "client_experience",
			Weight:   7,
			Options: map[string]int{
				"80%+ read everything - Highly engaged clients":            7,
				"50-80% read most documents - Decent engagement":           5,
				"20-50% skim at best - Many just sign":                     3,
				"Under 20% read thoroughly - Most clients just trust us":   2,
				"Honestly, very few read it all - They rely on us to explain": 1,
				"We don't really know - Never tracked this":                0,
			},
			Benchmark: "80%+ read everything - Highly engaged clients",
		},
		{
			ID:       "client_question_handling",
			Category: "client_experience",
			Weight:   8,
			Options: map[string]int{
				"24/7 AI chatbot - Instant answers anytime, all interactions logged": 8,
				"Email agent, wait for reply - Usually within 24 hours":              5,
				"Call/text agent during business hours - Agent availability limited": 4,
				"Ask at scheduled check-ins - Weekly or milestone meetings":          2,
				"Refer to documents/FAQs - Clients search on their own":              1,
				"Hope they ask if confused - No formal system for questions":         0,
			},
			Benchmark: "24/7 AI chatbot - Instant answers anytime, all interactions logged",
		},
		{
			ID:       "client_understanding_liability",
			Category: "risk_management",
			Weight:   10,
			Options: map[string]int{
				"Well-protected - We document education access with logged Q&A interactions": 10,
				"Partially protected - We document delivery and verbal explanations":         6,
				"Situational - Depends if we can prove we made ourselves available":          4,
				"Significant exposure - Hard to prove adequate explanation/education":        2,
				"High exposure - We're liable if they claim inadequate disclosure":           0,
				"Honestly uncertain - Never really assessed our liability in this area":      0,
			},
			Benchmark: "Well-protected - We document education access with logged Q&A interactions",
		},
		{
			ID:       "eo_claims_history",
			Category: "risk_management",
			Weight:   10,
			Options: map[string]int{
				"No claims, no close calls - Clean record":                 10,
				"Close calls, but avoided claims - Caught issues just in time": 6,
				"One claim or serious incident - Learned expensive lessons": 3,
				"Multiple claims or incidents - Ongoing concern":           0,
				"Not sure of our claim history - Would need to check records": 1,
				"Prefer not to disclose":                                   2,
			},
			Benchmark: "No claims, no close calls - Clean record",
		},
	},
	Tiers: []Tier{
		{
			MinPercent:     85,
			Profile:        "AI-Optimized Leader",
			RiskLevel:      RiskLow,
			PercentileRank: "95th percentile",
			Summary:        "Your brokerage operates at the highest industry standard with AI-enhanced systems, comprehensive oversight, and documented client education. You're in the top 5% of brokerages nationally.",
		},
		{
			MinPercent:     70,
			Profile:        "Well-Managed Professional",
			RiskLevel:      RiskModerate,
			PercentileRank: "80th percentile",
			Summary:        "Your brokerage has strong fundamentals with good oversight and training. You're in the top 20% nationally, but could benefit from increased automation and client engagement tools.",
		},
		{
			MinPercent:     50,
			Profile:        "Average with Gaps",
			RiskLevel:      RiskHigh,
			PercentileRank: "50th percentile",
			Summary:        "Your brokerage is performing at the national average, but has significant risk exposure. You're in the middle 50% of brokerages with opportunities to reduce liability through better systems and oversight.",
		},
		{
			MinPercent:     30,
			Profile:        "High-Risk Operation",
			RiskLevel:      RiskCritical,
			PercentileRank: "20th percentile",
			Summary:        "Your brokerage has substantial risk exposure with minimal systematic oversight. You're in the bottom 30% nationally and should prioritize implementing formal processes immediately.",
		},
		{
			MinPercent:     0,
			Profile:        "Critical Risk",
			RiskLevel:      RiskCritical,
			PercentileRank: "Bottom 10%",
			Summary:        "Your brokerage operates with critical risk levels that could result in significant financial and legal exposure. Immediate systematic changes are essential.",
		},
	},
}
