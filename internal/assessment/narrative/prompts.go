package narrative

import (
	"fmt"
	"sort"
	"strings"
)

// Placeholders substituted into cached narratives on read, so one cached
// generation serves every company with identical answers.
const (
	placeholderCompany = "[COMPANY]"
	placeholderMarket  = "[MARKET]"
)

// The agent bank gets its own persona; the brokerage-facing variants
// share the consultant persona.
const variantAgent = "agent"

// CategoryScore is a category line in the prompt input.
type CategoryScore struct {
	Category   string
	Score      int
	MaxScore   int
	Percentage int
}

// Response is an answered question in the prompt input.
type Response struct {
	QuestionID   string
	QuestionText string
	Answer       string
	Points       int
}

// PromptInput is the neutral snapshot of an assessment that prompts are
// built from. Use Anonymize before generation so the prompt text carries
// placeholders instead of identifying fields.
type PromptInput struct {
	Variant             string
	CompanyName         string
	CompanySize         string
	MonthlyTransactions string
	Market              string
	OverallScore        int
	RiskLevel           string
	CategoryScores      []CategoryScore
	Responses           []Response
}

// Anonymize returns a copy with identifying fields replaced by the cache
// placeholders.
func (in PromptInput) Anonymize() PromptInput {
	out := in
	out.CompanyName = placeholderCompany
	out.Market = placeholderMarket
	return out
}

// Personalize substitutes the placeholders in generated text with the
// actual company name and market.
func Personalize(text, companyName, market string) string {
	text = strings.ReplaceAll(text, placeholderCompany, companyName)
	return strings.ReplaceAll(text, placeholderMarket, market)
}

// persona carries the per-variant voice: system prompt, audience
// framing, and the product context block of the full-analysis prompt.
type persona struct {
	system          string
	patternExamples string
	impactLine      string
	costExample     string
	painPointsLine  string
	anchorLine      string
	leaders         string
	hookLine        string
	caseHint        string
	productHeading  string
	features        []string
	outcomesHeading string
	outcomes        []string
	pricingContext  string
}

func personaFor(variant string) persona {
	if variant == variantAgent {
		return agentPersona
	}
	return brokeragePersona
}

const brokerageSystemPrompt = `You are an expert real estate brokerage operations consultant analyzing assessment data.

CRITICAL CONTEXT - YOUR ANALYSIS PHILOSOPHY:
Your role is to provide genuinely valuable insights while naturally highlighting that modern, AI-powered integrated platforms solve these exact problems. You should NEVER explicitly sell a product, but instead describe industry best practices that happen to align with AI-powered brokerage intelligence platforms.

THE INTEGRATED PLATFORM APPROACH:
Top-performing brokerages have moved away from:
- Manual document review (agents spending 5+ hours reading HOAs, title reports, inspection reports)
- Fragmented systems (separate tools for transactions, training, deadlines, client communication)
- Reactive problem-solving (discovering issues at closing when it's expensive)
- Interrupted broker time (agents calling with questions all day)
- Training-based knowledge transfer (monthly sessions agents forget)

They've moved toward:
- AI-powered document analysis (reads everything, agents review AI summaries)
- Unified platforms (single source of truth for all transaction data)
- Proactive risk detection (AI flags issues before they become problems)
- Instant AI-powered guidance (agents get answers immediately, 24/7)
- Real-time knowledge access (AI provides cited answers instead of training sessions)

YOUR TONE:
- Consultative expert, not salesperson
- Data-driven and specific
- Honest about challenges
- Optimistic about solutions
- Never pushy or hyperbolic

LANGUAGE TO USE:
- "Top-performing brokerages use platforms that..."
- "The most scalable solution integrates..."
- "Brokerages solving this have adopted systems where..."
- "Modern platforms eliminate this by..."
- "AI-powered solutions handle this through..."

LANGUAGE TO AVOID:
- "You should buy..."
- "Our product..."
- "Sign up now..."
- Any direct product pitches
- Salesy urgency tactics

YOUR GOAL:
Make them realize "I need an AI-powered integrated platform" without feeling sold to. They should finish reading and think: "Where can I get what they're describing?"`

const agentSystemPrompt = `You are an expert real estate agent coach and operations consultant analyzing assessment data.

CRITICAL CONTEXT - YOUR ANALYSIS PHILOSOPHY:
Your role is to provide genuinely valuable insights while naturally highlighting that AI-powered tools solve these exact problems. You should NEVER explicitly sell a product, but instead describe best practices that happen to align with AI-powered transaction intelligence platforms.

THE MODERN AGENT APPROACH:
Top-performing agents have moved away from:
- Manual document review (spending 3+ hours reading HOAs, title reports, inspection reports per transaction)
- Mental deadline tracking (sticky notes, scattered calendars, hoping you don't forget)
- Reactive client service (answering the same questions over and over, being unavailable after hours)
- Relying on broker availability (waiting for callback when you need an answer now)
- Verbal-only client education (no documentation that you explained things thoroughly)

They've moved toward:
- AI-powered document analysis (AI reads everything, you review summaries with flagged issues)
- Automated deadline tracking (deadlines extracted automatically, alerts sent in advance)
- Proactive client service (24/7 chatbot answers client questions, all interactions logged)
- Instant AI-powered guidance (get compliance answers immediately without interrupting broker)
- Documented client education (every client interaction logged for liability protection)

YOUR TONE:
- Experienced coach, not salesperson
- Practical and specific
- Honest about challenges
- Optimistic about solutions
- Never pushy or hyperbolic

LANGUAGE TO USE:
- "Top producers use tools that..."
- "The most efficient approach is..."
- "Agents solving this have adopted..."
- "Modern platforms eliminate this by..."
- "AI-powered solutions handle this through..."

LANGUAGE TO AVOID:
- "You should buy..."
- "Our product..."
- "Sign up now..."
- Any direct product pitches
- Salesy urgency tactics

YOUR GOAL:
Make them realize "I need an AI assistant for my transactions" without feeling sold to. They should finish reading and think: "Where can I get what they're describing?"`

var brokeragePersona = persona{
	system:          brokerageSystemPrompt,
	patternExamples: `"growth outpacing systems", "fragmented operations", "reactive vs proactive"`,
	impactLine:      "Explain the business impact (time wasted, money lost, risk created)",
	costExample:     `"This manual process likely costs $X annually..."`,
	painPointsLine:  "Reference real operational pain points with evidence from their answers",
	anchorLine:      "Use their company name naturally 2-3 times throughout",
	leaders:         "top-performing brokerages",
	hookLine:        `"Your full report reveals the operational strategies industry leaders use to..."`,
	caseHint:        "brokerages like yours",
	productHeading:  `PRODUCT CONTEXT (frame as "industry best practices"):`,
	features: []string{
		"AI-powered document analysis that reads HOAs, title reports, and inspection reports in minutes",
		"Automated deadline extraction and smart alerts for all transaction milestones",
		"Real-time transaction oversight with multi-layer verification (Agent + TC + Broker + AI)",
		"Centralized knowledge base with AI-powered instant answers to legal and procedural questions",
		"Client-facing dashboard with AI-generated summaries of all transaction documents",
		"Integrated commission calculation and reconciliation system",
		"Automated compliance tracking and risk flagging",
		"Single unified platform eliminating data silos across transaction management",
	},
	outcomesHeading: "Expected Outcomes from Integrated Platforms:",
	outcomes: []string{
		"Reduce document review time from 5+ hours to under 30 minutes",
		"Eliminate missed deadlines with AI-extracted deadline tracking",
		"Reduce E&O claims through proactive compliance monitoring",
		"Improve client understanding with AI-generated document summaries",
		"Increase agent retention by reducing administrative burden",
		"Scale operations without proportional increase in overhead",
	},
}

var agentPersona = persona{
	system:          agentSystemPrompt,
	patternExamples: `"working harder not smarter", "reactive vs proactive", "time-strapped"`,
	impactLine:      "Explain the personal impact (time wasted, money at risk, stress created)",
	costExample:     `"This manual process likely costs you X hours per week..."`,
	painPointsLine:  "Reference real daily pain points with evidence from their answers",
	anchorLine:      "Reference their transaction volume naturally",
	leaders:         "top producers",
	hookLine:        `"Your full report reveals the specific strategies top 5% agents use to..."`,
	caseHint:        "agents like you",
	productHeading:  `PRODUCT CONTEXT (frame as "what top producers use"):`,
	features: []string{
		"AI document analysis: 50-page HOAs/title reports into a 1-page summary with issue highlights in under 5 minutes",
		"24/7 transaction-specific chatbot trained on all uploaded documents (answers your questions instantly)",
		"Automated deadline extraction from contracts with custom alert windows (never miss a date)",
		"Shareable client chatbot for transaction questions (no login required, 24/7 client access)",
		"Upload any document (contract, disclosure, HOA) and get instant AI analysis of risks and key points",
		"Integrates with your existing systems (SkySlope/DotLoop/LoneWolf) as an intelligence layer",
		"AI flags potential contract issues and liability risks before they escalate",
		"Logged client Q&A interactions provide documentation protection for E&O claims",
		"Knowledge base: your broker uploads policies for instant AI answers to compliance questions",
		"Eliminate 2-3 hours of manual document review per transaction",
	},
	outcomesHeading: "Conservative Expected Outcomes:",
	outcomes: []string{
		"Reduce document review from 2.5 hours to under 1 hour per transaction (60% reduction)",
		"Reduce client question-handling time by 70% (chatbot handles routine questions 24/7)",
		"Never miss a deadline through automated extraction and escalating alerts",
		"Improve client satisfaction through instant 24/7 access to transaction answers",
		"Reduce E&O risk exposure through proactive flagging and logged interactions",
		"Reclaim 4-6 hours per week for revenue-generating activities",
	},
	pricingContext: `Target Market & Pricing Transparency:
- Ideal fit: Agents doing 3-8 transactions per month
- Investment: $149-$199/month for 3-8 transactions/month ($1,788-$2,388/year)
- Typical ROI: 5:1 to 10:1 based on conservative time savings + risk mitigation
- Break-even: Pays for itself by preventing just 1 deal failure per year`,
}

func profileSection(in PromptInput) string {
	var b strings.Builder
	if in.Variant == variantAgent {
		fmt.Fprintf(&b, "Agent Profile:\n")
		fmt.Fprintf(&b, "- Name: %s\n", in.CompanyName)
		fmt.Fprintf(&b, "- Transaction Volume: %s transactions/month\n", in.MonthlyTransactions)
	} else {
		fmt.Fprintf(&b, "Company Profile:\n")
		fmt.Fprintf(&b, "- Brokerage: %s\n", in.CompanyName)
		fmt.Fprintf(&b, "- Size: %s agents\n", in.CompanySize)
		fmt.Fprintf(&b, "- Volume: %s transactions/month\n", in.MonthlyTransactions)
	}
	fmt.Fprintf(&b, "- Market: %s\n", in.Market)
	fmt.Fprintf(&b, "- Overall Score: %d/100\n", in.OverallScore)
	fmt.Fprintf(&b, "- Risk Level: %s", in.RiskLevel)
	return b.String()
}

// ExecutiveSummaryPrompt builds the free-preview prompt: a 200-250 word
// plain-text diagnosis leading into the gated full report.
func ExecutiveSummaryPrompt(in PromptInput) string {
	p := personaFor(in.Variant)

	weakest := make([]CategoryScore, len(in.CategoryScores))
	copy(weakest, in.CategoryScores)
	sort.SliceStable(weakest, func(i, j int) bool {
		return weakest[i].Percentage < weakest[j].Percentage
	})
	if len(weakest) > 2 {
		weakest = weakest[:2]
	}

	var criticalGaps []Response
	for _, r := range in.Responses {
		if r.Points <= 10 {
			criticalGaps = append(criticalGaps, r)
			if len(criticalGaps) == 3 {
				break
			}
		}
	}

	var b strings.Builder
	b.WriteString(p.system)
	fmt.Fprintf(&b, "\n\nASSESSMENT DATA FOR %s:\n\n", in.CompanyName)
	b.WriteString(profileSection(in))

	b.WriteString("\n\nCategory Performance:\n")
	for _, cat := range in.CategoryScores {
		fmt.Fprintf(&b, "- %s: %d%% (%d/%d)\n", cat.Category, cat.Percentage, cat.Score, cat.MaxScore)
	}

	b.WriteString("\nWeakest Areas:\n")
	for _, cat := range weakest {
		fmt.Fprintf(&b, "- %s: %d%%\n", cat.Category, cat.Percentage)
	}

	b.WriteString("\nCritical Low-Scoring Responses:\n")
	for i, r := range criticalGaps {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "- Q: %s\n  A: %s (%d points)\n", r.QuestionText, r.Answer, r.Points)
	}

	fmt.Fprintf(&b, `
TASK: Generate an executive summary (2-3 paragraphs) that:

1. OPENING PARAGRAPH - ACKNOWLEDGE & PATTERN RECOGNITION:
   - Acknowledge %[1]s's specific situation using their data
   - Identify the operational pattern you observe (e.g., %[2]s)
   - %[3]s
   - Be respectful and consultative in tone

2. DIAGNOSTIC PARAGRAPH - IDENTIFY GAPS WITHOUT SOLUTIONS:
   - Highlight their weakest category with specific evidence from their answers
   - %[4]s
   - Reference what their specific answer reveals about their operations
   - Frame the problem in terms they'll recognize from daily experience
   - Quantify the hidden costs when possible (e.g., %[5]s)
   - DO NOT provide solutions - only identify and diagnose the problem

3. CURIOSITY HOOK - CREATE DESIRE FOR FULL REPORT:
   - Reference that %[6]s approach this category completely differently
   - Hint at a transformation being possible but DON'T explain how
   - Create a curiosity gap: %[7]s
   - End with a compelling question or observation that makes them want to see the full analysis
   - DO NOT mention specific tools, platforms, or solutions

CRITICAL REQUIREMENTS:
- Be specific to THEIR data - no generic platitudes
- Demonstrate deep understanding of their exact situation
- %[8]s
- Quantify costs/impacts when possible (builds credibility)
- Create urgency through impact awareness, not time pressure
- NO SOLUTIONS in this preview - only diagnosis
- Create strong curiosity about what the full report contains
- Never pitch or sell directly
- 200-250 words maximum
- End with something that makes them think "I need to see that full report"

OUTPUT FORMAT: Plain text paragraphs (no JSON, no headings, just the summary text)`,
		in.CompanyName, p.patternExamples, p.anchorLine, p.impactLine,
		p.costExample, p.leaders, p.hookLine, p.painPointsLine)

	return b.String()
}

// FullAnalysisPrompt builds the email-gated comprehensive analysis
// prompt. The model is instructed to return a bare JSON document.
func FullAnalysisPrompt(in PromptInput) string {
	p := personaFor(in.Variant)

	var b strings.Builder
	b.WriteString(p.system)
	fmt.Fprintf(&b, "\n\nASSESSMENT DATA FOR %s:\n\n", in.CompanyName)
	b.WriteString(profileSection(in))

	b.WriteString("\n\nCategory Scores:\n")
	for _, cat := range in.CategoryScores {
		fmt.Fprintf(&b, "- %s: %d/%d (%d%%)\n", cat.Category, cat.Score, cat.MaxScore, cat.Percentage)
	}

	b.WriteString("\nAll Responses:\n")
	for i, r := range in.Responses {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "Q: %s\nA: %s\nPoints: %d\n", r.QuestionText, r.Answer, r.Points)
	}

	fmt.Fprintf(&b, "\n%s\n", p.productHeading)
	for _, f := range p.features {
		fmt.Fprintf(&b, "- %s\n", f)
	}
	fmt.Fprintf(&b, "\n%s\n", p.outcomesHeading)
	for _, o := range p.outcomes {
		fmt.Fprintf(&b, "- %s\n", o)
	}
	if p.pricingContext != "" {
		fmt.Fprintf(&b, "\n%s\n", p.pricingContext)
	}

	b.WriteString(`
TASK: Generate a comprehensive analysis in JSON format with these components:

{
  "gapAnalysis": [
    {
      "category": "string (which assessment category)",
      "issue": "string (specific problem based on their answer)",
      "evidence": "string (quote their specific answer that reveals this)",
      "businessImpact": {
        "timeWasted": "string (estimated hours/week)",
        "financialCost": "string (estimated $/year)",
        "riskCreated": "string (E&O exposure, deal loss potential)"
      },
      "rootCause": "string (why this gap exists - usually: manual processes, fragmented systems, reactive approach)",
      "industryBestPractice": "string (describe what the top 5% DO operationally - focus on approach/capabilities, not specific tools)",
      "severity": "CRITICAL|HIGH|MEDIUM"
    }
  ],
  "roadmap": {
    "quickWins": [
      {
        "action": "string (specific action item)",
        "addresses": "string (which gap/category)",
        "implementation": "string (how to do it - describe the capability needed)",
        "expectedOutcome": "string (measurable improvement)",
        "modernApproach": "string (educational note on how top performers handle this)"
      }
    ],
    "foundationBuilding": [],
    "transformation": []
  },
  "competitivePositioning": {
    "strengths": ["string"],
    "weaknesses": ["string"],
    "percentileAnalysis": "string",
    "gapToLeaders": "string"
  },
  "financialImpact": {
    "currentStateCosts": {
      "manualDocumentReview": "string",
      "missedDeadlines": "string",
      "eoRisk": "string",
      "totalAnnual": "string"
    },
    "projectedSavings": {
      "timeReclaimed": "string",
      "dealsProtected": "string",
      "riskReduction": "string",
      "totalAnnual": "string",
      "roi": "string"
    },
    "implementationNote": "string"
  },
  "specificRecommendations": [
    {
      "recommendation": "string",
      "rationale": "string",
      "expectedOutcome": "string",
      "howTopBrokeragesDoThis": "string"
    }
  ],
  "archetype": {
    "type": "string",
    "description": "string",
    "typicalChallenges": ["string"],
    "pathForward": "string"
  },
  "keyInsight": "string (one powerful, memorable insight about their situation)"
}

Identify 5-7 critical operational gaps based on their lowest-scoring answers.
The roadmap is a 60-day plan: quickWins (0-20 days, minimal investment),
foundationBuilding (20-40 days, moderate investment), transformation
(40-60 days, significant investment), all using the quick-win structure.

CRITICAL REQUIREMENTS:
`)
	fmt.Fprintf(&b, `1. Focus on education: Describe what the top 5%% of %[1]s DO operationally (their capabilities and approaches)
2. Be specific to THEIR answers - reference what they actually said in the assessment
3. Use conservative financial estimates (builds credibility)
4. Let readers connect the dots: Describe capabilities that make them think "I need tools to do this"
5. NEVER explicitly sell or pitch products - maintain consultant/educator tone throughout
6. Be genuinely helpful - this should provide real value as standalone consulting insights
7. Quantify everything possible (hours, dollars, percentages, ROI)
8. Keep responses concise but specific - aim for comprehensive but not excessive detail
9. Frame solutions as "operational approaches of top performers" not "products to buy"
10. Make them realize %[1]s at the top have capabilities they don't - naturally creating demand for similar tools

OUTPUT FORMAT INSTRUCTIONS:
- Return ONLY valid JSON
- DO NOT wrap in markdown code blocks
- DO NOT include any text before or after the JSON
- Start your response with { and end with }
- Ensure all JSON is properly formatted and complete
- If response is long, prioritize completeness over excessive detail`, p.leaders)

	return b.String()
}

// DeepDivePrompt builds the drip-sequence email prompt for one category.
func DeepDivePrompt(in PromptInput, category string) string {
	p := personaFor(in.Variant)

	var catScore CategoryScore
	for _, c := range in.CategoryScores {
		if c.Category == category {
			catScore = c
			break
		}
	}

	var b strings.Builder
	b.WriteString(p.system)
	fmt.Fprintf(&b, "\n\nDEEP DIVE: %s for %s\n\n", category, in.CompanyName)
	fmt.Fprintf(&b, "Category Score: %d%% (%d/%d)\n", catScore.Percentage, catScore.Score, catScore.MaxScore)

	b.WriteString("\nTheir Specific Answers:\n")
	for i, r := range in.Responses {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "Q: %s\nA: %s\nPoints: %d\n", r.QuestionText, r.Answer, r.Points)
	}

	fmt.Fprintf(&b, `
TASK: Write an engaging email (400-500 words) that:

1. SUBJECT LINE (create compelling subject)
2. OPENING (acknowledge their specific situation in this category)
3. THE PROBLEM (explain what their answers reveal - be specific)
4. THE COST (quantify time/money/risk this creates)
5. THE SOLUTION (describe integrated platform approach as "how leaders solve this")
6. CASE HINT (mention %q that transformed this area)
7. CTA (soft: "Want to see how this works in practice?")

TONE: Helpful expert sharing insights, not salesperson pushing product

PRODUCT INTEGRATION: Naturally describe platform features as "modern approaches" and "what works"

OUTPUT FORMAT:
{
  "subject": "string",
  "body": "string (formatted with paragraphs, ready for email)"
}`, p.caseHint)

	return b.String()
}
