package roi

import (
	"strings"
	"testing"

	"leadmagnet_backend/internal/assessment/questionbank"
)

func TestAgentDefaultVolume(t *testing.T) {
	m, err := ModelFor(questionbank.BankAgent)
	if err != nil {
		t.Fatalf("ModelFor(agent) error = %v", err)
	}
	est := m.Estimate(3)

	if est.AnnualTransactions != 36 {
		t.Fatalf("AnnualTransactions = %d, want 36", est.AnnualTransactions)
	}
	if est.TimeSavingsTotal != 8100 {
		t.Errorf("TimeSavingsTotal = %d, want 8100", est.TimeSavingsTotal)
	}
	if est.DealsSaved != 1 || est.RevenueProtection != 7500 {
		t.Errorf("revenue protection = %d deals / $%d, want 1 / $7500", est.DealsSaved, est.RevenueProtection)
	}
	if est.RiskTotal != 3500 {
		t.Errorf("RiskTotal = %d, want 3500", est.RiskTotal)
	}
	if est.MonthlyInvestment != 149 || est.AnnualInvestment != 1788 {
		t.Errorf("investment = %d/%d, want 149/1788", est.MonthlyInvestment, est.AnnualInvestment)
	}
	if est.ROI != "9.7:1" {
		t.Errorf("ROI = %q, want 9.7:1", est.ROI)
	}
	if !est.PositiveROI {
		t.Error("PositiveROI = false")
	}
	if est.MarketFit != FitIdeal {
		t.Errorf("MarketFit = %q, want ideal", est.MarketFit)
	}
	if est.BreakEvenDeals != 0.3 {
		t.Errorf("BreakEvenDeals = %v, want 0.3", est.BreakEvenDeals)
	}
}

func TestBrokerageDefaultVolume(t *testing.T) {
	m, err := ModelFor(questionbank.BankBrokerage)
	if err != nil {
		t.Fatalf("ModelFor(brokerage) error = %v", err)
	}
	est := m.Estimate(75)

	if est.TransactionsPerMonth != 150 || est.AnnualTransactions != 1800 {
		t.Fatalf("volume = %d tx/mo, %d/yr; want 150, 1800", est.TransactionsPerMonth, est.AnnualTransactions)
	}
	if est.TimeSavingsTotal != 262600 {
		t.Errorf("TimeSavingsTotal = %d, want 262600", est.TimeSavingsTotal)
	}
	if est.DealsSaved != 23 || est.RevenueProtection != 184000 {
		t.Errorf("revenue protection = %d deals / $%d, want 23 / $184000", est.DealsSaved, est.RevenueProtection)
	}
	if est.RiskTotal != 105750 {
		t.Errorf("RiskTotal = %d, want 105750", est.RiskTotal)
	}
	if est.MonthlyInvestment != 1200 {
		t.Errorf("MonthlyInvestment = %d, want 1200", est.MonthlyInvestment)
	}
	if est.ROI != "37.4:1" {
		t.Errorf("ROI = %q, want 37.4:1", est.ROI)
	}
	if est.MarketFit != FitIdeal {
		t.Errorf("MarketFit = %q, want ideal", est.MarketFit)
	}
	if est.BreakEvenDeals != 0 {
		t.Errorf("BreakEvenDeals = %v, want 0 for brokerage", est.BreakEvenDeals)
	}
}

func TestZeroVolumeFallsBackToDefault(t *testing.T) {
	for _, variant := range []string{questionbank.BankBrokerage, questionbank.BankAgent} {
		m, _ := ModelFor(variant)
		zero := m.Estimate(0)
		def := m.Estimate(m.DefaultVolume)
		if zero.Volume != m.DefaultVolume {
			t.Errorf("%s: Estimate(0).Volume = %d, want default %d", variant, zero.Volume, m.DefaultVolume)
		}
		if zero.TotalAnnualValue != def.TotalAnnualValue {
			t.Errorf("%s: zero-volume estimate differs from default", variant)
		}
		if zero.AnnualInvestment <= 0 {
			t.Errorf("%s: AnnualInvestment = %d", variant, zero.AnnualInvestment)
		}
	}
}

func TestPricingTiers(t *testing.T) {
	brokerage, _ := ModelFor(questionbank.BankBrokerage)
	agent, _ := ModelFor(questionbank.BankAgent)

	brokerageTiers := []struct{ agents, monthly int }{
		{10, 750}, {49, 750}, {50, 1200}, {100, 1200}, {101, 1500}, {150, 1500}, {151, 2000},
	}
	for _, tt := range brokerageTiers {
		if got := brokerage.Estimate(tt.agents).MonthlyInvestment; got != tt.monthly {
			t.Errorf("brokerage %d agents: monthly = %d, want %d", tt.agents, got, tt.monthly)
		}
	}

	agentTiers := []struct{ tx, monthly int }{
		{1, 99}, {2, 99}, {3, 149}, {5, 149}, {6, 199}, {8, 199}, {9, 249},
	}
	for _, tt := range agentTiers {
		if got := agent.Estimate(tt.tx).MonthlyInvestment; got != tt.monthly {
			t.Errorf("agent %d tx/mo: monthly = %d, want %d", tt.tx, got, tt.monthly)
		}
	}
}

func TestMarketFitBreakpoints(t *testing.T) {
	brokerage, _ := ModelFor(questionbank.BankBrokerage)
	tests := []struct {
		agents int
		fit    string
	}{
		{20, FitBelowTarget},
		{50, FitIdeal},
		{150, FitIdeal},
		{151, FitLarge},
	}
	for _, tt := range tests {
		est := brokerage.Estimate(tt.agents)
		if est.MarketFit != tt.fit {
			t.Errorf("%d agents: fit = %q, want %q", tt.agents, est.MarketFit, tt.fit)
		}
		if est.MarketFitMessage == "" {
			t.Errorf("%d agents: empty market fit message", tt.agents)
		}
	}

	agent, _ := ModelFor(questionbank.BankAgent)
	if got := agent.Estimate(2).MarketFit; got != FitBelowTarget {
		t.Errorf("2 tx/mo: fit = %q, want below-target", got)
	}
	if got := agent.Estimate(12).MarketFit; got != FitHighVolume {
		t.Errorf("12 tx/mo: fit = %q, want high-volume", got)
	}
}

func TestValueMonotonicInVolume(t *testing.T) {
	agent, _ := ModelFor(questionbank.BankAgent)
	prev := 0
	for tx := 1; tx <= 20; tx++ {
		est := agent.Estimate(tx)
		if est.TotalAnnualValue < prev {
			t.Fatalf("%d tx/mo: total value %d dropped below %d", tx, est.TotalAnnualValue, prev)
		}
		prev = est.TotalAnnualValue
	}
}

func TestROIFormat(t *testing.T) {
	agent, _ := ModelFor(questionbank.BankAgent)
	for tx := 1; tx <= 12; tx++ {
		est := agent.Estimate(tx)
		if !strings.HasSuffix(est.ROI, ":1") {
			t.Fatalf("ROI %q missing :1 suffix", est.ROI)
		}
	}
}

func TestBrokerOpsSharesBrokerageModel(t *testing.T) {
	ops, err := ModelFor(questionbank.BankBrokerOps)
	if err != nil {
		t.Fatalf("ModelFor(broker_ops) error = %v", err)
	}
	brokerage, _ := ModelFor(questionbank.BankBrokerage)
	if ops != brokerage {
		t.Error("broker_ops should use the brokerage ROI model")
	}
}

func TestUnknownVariant(t *testing.T) {
	if _, err := ModelFor("nope"); err == nil {
		t.Fatal("ModelFor(\"nope\") did not return an error")
	}
}
