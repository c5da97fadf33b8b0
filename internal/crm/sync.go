package crm

import (
	"context"
	"fmt"

	"leadmagnet_backend/platform/phone"
)

// Lead is everything the CRM needs about a captured assessment lead.
type Lead struct {
	AssessmentID        string
	Email               string
	FirstName           string
	LastName            string
	Phone               string
	CompanyName         string
	CompanySize         string
	MonthlyTransactions string
	Market              string
	OverallScore        int
	RiskLevel           string
	ReportURL           string
}

// SyncLead pushes a captured lead to ActiveCampaign: contact upsert,
// risk tags and custom fields. Tagging and field failures are logged
// but do not abort the sync; the contact upsert is the only hard
// dependency.
func (c *Client) SyncLead(ctx context.Context, lead Lead) error {
	if !c.Enabled() {
		return nil
	}

	contactID, err := c.UpsertContact(ctx, Contact{
		Email:     lead.Email,
		FirstName: lead.FirstName,
		LastName:  lead.LastName,
		Phone:     phone.NormalizeE164(lead.Phone),
	})
	if err != nil {
		c.log.CRMEvent("contact_sync", lead.Email, false, err.Error())
		return err
	}
	c.log.CRMEvent("contact_sync", lead.Email, true, "")

	if err := c.TagContact(ctx, contactID, lead.RiskLevel); err == nil {
		c.log.CRMEvent("tags_applied", lead.Email, true, "")
	}

	fields := map[string]string{
		"Brokerage name":       lead.CompanyName,
		"Brokerage size":       lead.CompanySize,
		"Overall Score":        fmt.Sprintf("%d", lead.OverallScore),
		"Risk Level":           lead.RiskLevel,
		"City":                 lead.Market,
		"Assessment ID":        lead.AssessmentID,
		"Monthly Transactions": lead.MonthlyTransactions,
		"Report URL":           lead.ReportURL,
	}
	if err := c.SetCustomFields(ctx, contactID, fields); err == nil {
		c.log.CRMEvent("fields_updated", lead.Email, true, "")
	}

	return nil
}
