// Package roi estimates the annual value of the platform for a given
// business volume: time savings across recurring tasks, revenue protected
// by preventing deal failures, risk mitigation, and the resulting return
// on the tiered subscription cost.
package roi

import (
	"fmt"
	"math"

	"leadmagnet_backend/internal/assessment/questionbank"
)

// Market-fit classifications.
const (
	FitIdeal       = "ideal"
	FitLarge       = "large"
	FitHighVolume  = "high-volume"
	FitBelowTarget = "below-target"
)

// TimeSaving is one recurring task's annual savings.
type TimeSaving struct {
	Label       string `json:"label"`
	Hours       int    `json:"hours"`
	Value       int    `json:"value"`
	Calculation string `json:"calculation"`
}

// LineItem is a risk-mitigation value with its explanation.
type LineItem struct {
	Label string `json:"label"`
	Value int    `json:"value"`
	Note  string `json:"note"`
}

// Estimate is a complete ROI projection.
type Estimate struct {
	Variant              string       `json:"variant"`
	Volume               int          `json:"volume"`
	TransactionsPerMonth int          `json:"transactionsPerMonth"`
	AnnualTransactions   int          `json:"annualTransactions"`
	TimeSavings          []TimeSaving `json:"timeSavings"`
	TimeSavingsTotal     int          `json:"timeSavingsTotal"`
	DealsSaved           int          `json:"dealsSaved"`
	AvgCommission        int          `json:"avgCommission"`
	RevenueProtection    int          `json:"revenueProtection"`
	RevenueNote          string       `json:"revenueNote"`
	RiskItems            []LineItem   `json:"riskItems"`
	RiskTotal            int          `json:"riskTotal"`
	MonthlyInvestment    int          `json:"monthlyInvestment"`
	AnnualInvestment     int          `json:"annualInvestment"`
	TotalAnnualValue     int          `json:"totalAnnualValue"`
	NetBenefit           int          `json:"netBenefit"`
	ROI                  string       `json:"roi"`
	PositiveROI          bool         `json:"positiveRoi"`
	MarketFit            string       `json:"marketFit"`
	MarketFitMessage     string       `json:"marketFitMessage"`
	BreakEvenDeals       float64      `json:"breakEvenDeals,omitempty"`
}

// task is a recurring activity the platform shortens. Weekly tasks
// annualize at 52 occurrences; the rest scale with annual transactions.
type task struct {
	label        string
	currentHours float64
	reducedHours float64
	hourlyValue  int
	weekly       bool
}

// Model parameterizes the estimator for one audience.
type Model struct {
	Variant       string
	DefaultVolume int

	transactionsPerMonth func(volume int) int
	tasks                []task

	avgCommission   int
	dealsAtRiskRate float64
	dealsAtRiskMin  int
	dealsSavedMin   int

	riskItems func(volume, annualTx int) []LineItem

	monthlyCost func(volume int) int
	marketFit   func(volume, txPerMonth int) (string, string)

	breakEven bool
}

var models = map[string]*Model{
	questionbank.BankBrokerage: brokerageModel,
	questionbank.BankAgent:     agentModel,
	// The operations questionnaire targets the same audience and volume
	// inputs as the brokerage assessment.
	questionbank.BankBrokerOps: brokerageModel,
}

// ModelFor returns the ROI model for a bank variant.
func ModelFor(bankID string) (*Model, error) {
	m, ok := models[bankID]
	if !ok {
		return nil, fmt.Errorf("no roi model for variant %q", bankID)
	}
	return m, nil
}

// Estimate projects annual value for the given volume (agents for
// brokerage variants, transactions per month for agents). Non-positive
// volume falls back to the model default so the estimate never divides
// by zero or reports empty savings.
func (m *Model) Estimate(volume int) Estimate {
	if volume <= 0 {
		volume = m.DefaultVolume
	}

	txPerMonth := m.transactionsPerMonth(volume)
	annualTx := txPerMonth * 12

	est := Estimate{
		Variant:              m.Variant,
		Volume:               volume,
		TransactionsPerMonth: txPerMonth,
		AnnualTransactions:   annualTx,
		AvgCommission:        m.avgCommission,
	}

	for _, t := range m.tasks {
		units := float64(annualTx)
		if t.weekly {
			units = 52
		}
		hoursSaved := (t.currentHours - t.reducedHours) * units
		value := round(hoursSaved * float64(t.hourlyValue))
		est.TimeSavings = append(est.TimeSavings, TimeSaving{
			Label:       t.label,
			Hours:       round(hoursSaved),
			Value:       value,
			Calculation: fmt.Sprintf("%d hours saved × $%d/hr", round(hoursSaved), t.hourlyValue),
		})
		est.TimeSavingsTotal += value
	}

	dealsAtRisk := round(float64(annualTx) * m.dealsAtRiskRate)
	if dealsAtRisk < m.dealsAtRiskMin {
		dealsAtRisk = m.dealsAtRiskMin
	}
	est.DealsSaved = round(float64(dealsAtRisk) * 0.5)
	if est.DealsSaved < m.dealsSavedMin {
		est.DealsSaved = m.dealsSavedMin
	}
	est.RevenueProtection = est.DealsSaved * m.avgCommission
	est.RevenueNote = fmt.Sprintf("Preventing %d deal %s per year at $%d avg commission",
		est.DealsSaved, plural(est.DealsSaved, "failure", "failures"), m.avgCommission)

	est.RiskItems = m.riskItems(volume, annualTx)
	for _, item := range est.RiskItems {
		est.RiskTotal += item.Value
	}

	est.MonthlyInvestment = m.monthlyCost(volume)
	est.AnnualInvestment = est.MonthlyInvestment * 12

	est.TotalAnnualValue = est.TimeSavingsTotal + est.RevenueProtection + est.RiskTotal
	est.NetBenefit = est.TotalAnnualValue - est.AnnualInvestment
	est.ROI = fmt.Sprintf("%.1f:1", float64(est.NetBenefit)/float64(est.AnnualInvestment))
	est.PositiveROI = est.NetBenefit > 0

	est.MarketFit, est.MarketFitMessage = m.marketFit(volume, txPerMonth)

	if m.breakEven {
		est.BreakEvenDeals = math.Ceil(float64(est.AnnualInvestment)/float64(m.avgCommission)*10) / 10
	}

	return est
}

var brokerageModel = &Model{
	Variant:       questionbank.BankBrokerage,
	DefaultVolume: 75,
	transactionsPerMonth: func(agents int) int {
		return agents * 2
	},
	tasks: []task{
		{label: "Agent document review & coordination", currentHours: 1.5, reducedHours: 0.6, hourlyValue: 50},
		{label: "Broker review & oversight", currentHours: 1, reducedHours: 0.4, hourlyValue: 100},
		{label: "TC coordination", currentHours: 0.5, reducedHours: 0.2, hourlyValue: 40},
		{label: "Broker question handling", currentHours: 10, reducedHours: 2, hourlyValue: 125, weekly: true},
	},
	avgCommission:   8000,
	dealsAtRiskRate: 0.025,
	dealsSavedMin:   2,
	riskItems: func(agents, annualTx int) []LineItem {
		misses := round(float64(annualTx) * 0.015)
		if misses < 2 {
			misses = 2
		}
		anomalies := round(float64(annualTx) * 0.02)
		if anomalies < 3 {
			anomalies = 3
		}
		return []LineItem{
			{
				Label: "Missed deadline prevention",
				Value: misses * 2500,
				Note:  fmt.Sprintf("Preventing %d missed deadlines per year at $2,500 average cost", misses),
			},
			{
				Label: "E&O exposure reduction",
				Value: agents * 150,
				Note:  "$150 per agent in reduced E&O risk exposure",
			},
			{
				Label: "Commission anomaly catches",
				Value: anomalies * 750,
				Note:  "Catching commission anomalies before contract signing",
			},
		}
	},
	monthlyCost: func(agents int) int {
		switch {
		case agents < 50:
			return 750
		case agents <= 100:
			return 1200
		case agents <= 150:
			return 1500
		default:
			return 2000
		}
	},
	marketFit: func(agents, txPerMonth int) (string, string) {
		switch {
		case agents >= 50 && agents <= 150:
			return FitIdeal, fmt.Sprintf("At %d agents, you're in the sweet spot where ContRE delivers clearest ROI. Large enough that operational strain is real, nimble enough for quick implementation.", agents)
		case agents > 150:
			return FitLarge, fmt.Sprintf("At your scale, transaction intelligence isn't optional. It's essential infrastructure. ContRE becomes your operational backbone, handling %d+ transactions/month with systematic oversight.", txPerMonth)
		default:
			return FitBelowTarget, "ContRE typically delivers best ROI for 50+ agent brokerages. That said, if you're spending 10+ hours/week on document review and agent questions, the math may still work for your specific situation."
		}
	},
}

var agentModel = &Model{
	Variant:       questionbank.BankAgent,
	DefaultVolume: 3,
	transactionsPerMonth: func(txPerMonth int) int {
		return txPerMonth
	},
	tasks: []task{
		{label: "Document review", currentHours: 2.5, reducedHours: 0.75, hourlyValue: 75},
		{label: "Deadline tracking", currentHours: 0.5, reducedHours: 0.1, hourlyValue: 75},
		{label: "Client questions", currentHours: 1, reducedHours: 0.3, hourlyValue: 75},
		{label: "Broker consultations", currentHours: 0.25, reducedHours: 0.1, hourlyValue: 75},
	},
	avgCommission:   7500,
	dealsAtRiskRate: 0.025,
	dealsAtRiskMin:  1,
	dealsSavedMin:   1,
	riskItems: func(_, annualTx int) []LineItem {
		misses := round(float64(annualTx) * 0.02)
		if misses < 1 {
			misses = 1
		}
		return []LineItem{
			{
				Label: "Missed deadline prevention",
				Value: misses * 2000,
				Note:  fmt.Sprintf("Preventing %d missed %s per year at $2,000 average cost", misses, plural(misses, "deadline", "deadlines")),
			},
			{
				Label: "E&O exposure reduction",
				Value: 500,
				Note:  "Reduced E&O risk exposure through documented client interactions",
			},
			{
				Label: "Client satisfaction",
				Value: 1000,
				Note:  "Better client experience leads to more referrals and repeat business",
			},
		}
	},
	monthlyCost: func(txPerMonth int) int {
		switch {
		case txPerMonth < 3:
			return 99
		case txPerMonth <= 5:
			return 149
		case txPerMonth <= 8:
			return 199
		default:
			return 249
		}
	},
	marketFit: func(txPerMonth, _ int) (string, string) {
		switch {
		case txPerMonth >= 3 && txPerMonth <= 8:
			return FitIdeal, fmt.Sprintf("At %d transactions per month, you're in the sweet spot where ContRE delivers immediate, measurable ROI. You're busy enough that time savings matter, but not so busy that you can't implement new tools.", txPerMonth)
		case txPerMonth > 8:
			return FitHighVolume, fmt.Sprintf("At your transaction volume, ContRE isn't optional. It's essential infrastructure. You're managing %d deals per year, and ContRE becomes your AI assistant handling the time-consuming work while you focus on clients and closing deals.", txPerMonth*12)
		default:
			return FitBelowTarget, fmt.Sprintf("At %d transactions per month, ContRE may still make sense if you value your time highly or struggle with deadline tracking. The risk mitigation alone can pay for the investment if it prevents even one deal failure.", txPerMonth)
		}
	},
	breakEven: true,
}

func round(v float64) int {
	return int(math.Round(v))
}

func plural(n int, singular, pluralForm string) string {
	if n == 1 {
		return singular
	}
	return pluralForm
}
