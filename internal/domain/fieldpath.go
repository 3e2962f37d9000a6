package domain

import (
	"strconv"
	"strings"
)

// Bound scalar paths of the invoice form
const (
	PathCurrency       = "currency"
	PathTheme          = "theme"
	PathCompanyName    = "companyInfo.name"
	PathCompanyAddress = "companyInfo.address"
	PathCompanyCity    = "companyInfo.city"
	PathCompanyPhone   = "companyInfo.phone"
	PathCompanyEmail   = "companyInfo.email"
	PathClientName     = "clientInfo.name"
	PathClientAddress  = "clientInfo.address"
	PathClientCity     = "clientInfo.city"
	PathClientEmail    = "clientInfo.email"
	PathNumber         = "invoiceDetails.number"
	PathDate           = "invoiceDetails.date"
	PathDueDate        = "invoiceDetails.dueDate"
	PathNotes          = "notes"
	PathTerms          = "terms"
	PathBankName       = "paymentDetails.bankName"
	PathAccountHolder  = "paymentDetails.accountHolder"
	PathAccountNumber  = "paymentDetails.accountNumber"
	PathReference      = "paymentDetails.reference"
	PathVATRate        = "vatRate"
)

type accessor struct {
	get func(*Invoice) string
	set func(*Invoice, string)
}

func stringField(ref func(*Invoice) *string) accessor {
	return accessor{
		get: func(i *Invoice) string { return *ref(i) },
		set: func(i *Invoice, v string) { *ref(i) = v },
	}
}

// fieldOrder is the form order used by Paths and Populate
var fieldOrder = []string{
	PathCurrency,
	PathTheme,
	PathCompanyName,
	PathCompanyAddress,
	PathCompanyCity,
	PathCompanyPhone,
	PathCompanyEmail,
	PathClientName,
	PathClientAddress,
	PathClientCity,
	PathClientEmail,
	PathNumber,
	PathDate,
	PathDueDate,
	PathNotes,
	PathTerms,
	PathBankName,
	PathAccountHolder,
	PathAccountNumber,
	PathReference,
	PathVATRate,
}

var fields = map[string]accessor{
	PathCurrency:       stringField(func(i *Invoice) *string { return &i.Currency }),
	PathTheme:          stringField(func(i *Invoice) *string { return &i.Theme }),
	PathCompanyName:    stringField(func(i *Invoice) *string { return &i.CompanyInfo.Name }),
	PathCompanyAddress: stringField(func(i *Invoice) *string { return &i.CompanyInfo.Address }),
	PathCompanyCity:    stringField(func(i *Invoice) *string { return &i.CompanyInfo.City }),
	PathCompanyPhone:   stringField(func(i *Invoice) *string { return &i.CompanyInfo.Phone }),
	PathCompanyEmail:   stringField(func(i *Invoice) *string { return &i.CompanyInfo.Email }),
	PathClientName:     stringField(func(i *Invoice) *string { return &i.ClientInfo.Name }),
	PathClientAddress:  stringField(func(i *Invoice) *string { return &i.ClientInfo.Address }),
	PathClientCity:     stringField(func(i *Invoice) *string { return &i.ClientInfo.City }),
	PathClientEmail:    stringField(func(i *Invoice) *string { return &i.ClientInfo.Email }),
	PathNumber:         stringField(func(i *Invoice) *string { return &i.InvoiceDetails.Number }),
	PathDate:           stringField(func(i *Invoice) *string { return &i.InvoiceDetails.Date }),
	PathDueDate:        stringField(func(i *Invoice) *string { return &i.InvoiceDetails.DueDate }),
	PathNotes:          stringField(func(i *Invoice) *string { return &i.Notes }),
	PathTerms:          stringField(func(i *Invoice) *string { return &i.Terms }),
	PathBankName:       stringField(func(i *Invoice) *string { return &i.PaymentDetails.BankName }),
	PathAccountHolder:  stringField(func(i *Invoice) *string { return &i.PaymentDetails.AccountHolder }),
	PathAccountNumber:  stringField(func(i *Invoice) *string { return &i.PaymentDetails.AccountNumber }),
	PathReference:      stringField(func(i *Invoice) *string { return &i.PaymentDetails.Reference }),
	PathVATRate: {
		get: func(i *Invoice) string { return strconv.FormatFloat(i.VATRate, 'f', -1, 64) },
		set: func(i *Invoice, v string) { i.VATRate = clampRate(ParseNumber(v)) },
	},
}

// Paths lists every bound dotted path in form order
func Paths() []string {
	out := make([]string, len(fieldOrder))
	copy(out, fieldOrder)
	return out
}

// KnownPath reports whether path names a bound field
func KnownPath(path string) bool {
	_, ok := fields[strings.TrimSpace(path)]
	return ok
}

// SetField assigns value to the scalar field at the dotted path.
// An empty or unknown path leaves the model untouched and returns false.
func (i *Invoice) SetField(path, value string) bool {
	acc, ok := fields[strings.TrimSpace(path)]
	if !ok {
		return false
	}
	acc.set(i, value)
	return true
}

// Field reads the scalar field at the dotted path as the control would show it
func (i *Invoice) Field(path string) (string, bool) {
	acc, ok := fields[strings.TrimSpace(path)]
	if !ok {
		return "", false
	}
	return acc.get(i), true
}
