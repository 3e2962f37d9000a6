package render

import "html/template"

const invoiceHTMLTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Invoice {{.Number}}</title>
    <style>
        @import url('https://fonts.googleapis.com/css2?family=Inter:wght@400;500;700&display=swap');
{{.BaseCSS}}
{{.ThemeCSS}}
    </style>
</head>
<body class="theme-{{.Theme}}">
    <div class="invoice-container">
        <div class="invoice-header">
            <div class="invoice-title">
                <h1>INVOICE</h1>
                <div class="invoice-number">#{{.NumberLabel}}</div>
                <div class="from-info">
                    <div class="company-name">{{.Company.Name}}</div>
                    <div class="company-details">
                        {{.Company.Address}}<br>
                        {{.Company.City}}<br>
                        {{.Company.Email}}<br>
                        {{.Company.Phone}}
                    </div>
                </div>
            </div>
        </div>

        <div class="invoice-body">
            <div class="invoice-meta">
                <div class="bill-to">
                    <h3>BILL TO:</h3>
                    <div class="client-name">{{.Client.Name}}</div>
                    <div class="client-address">
                        {{.Client.Address}}<br>
                        {{.Client.City}}<br>
                        {{.Client.Email}}
                    </div>
                </div>
                <div class="invoice-dates">
                    <div class="date-row">
                        <span class="date-label">Invoice Date:</span>
                        <span class="date-value">{{.Date}}</span>
                    </div>
                    <div class="date-row">
                        <span class="date-label">Due Date:</span>
                        <span class="date-value">{{.DueDate}}</span>
                    </div>
                </div>
            </div>

            <table class="invoice-table">
                <thead>
                    <tr>
                        <th>DESCRIPTION</th>
                        <th class="text-center">QTY</th>
                        <th class="text-right">RATE</th>
                        <th class="text-right">AMOUNT</th>
                    </tr>
                </thead>
                <tbody>
                    {{- range .Items}}
                    <tr>
                        <td>{{.Description}}</td>
                        <td class="text-center">{{.Quantity}}</td>
                        <td class="text-right">{{.Rate}}</td>
                        <td class="text-right amount">{{.Amount}}</td>
                    </tr>
                    {{- end}}
                </tbody>
            </table>

            <div class="totals-section">
                <div class="totals-table">
                    <div class="totals-row">
                        <span>Subtotal:</span>
                        <span class="amount">{{.Subtotal}}</span>
                    </div>
                    <div class="totals-row">
                        <span>{{.VATLabel}}</span>
                        <span class="amount">{{.VATAmount}}</span>
                    </div>
                    <div class="totals-row total">
                        <span>TOTAL:</span>
                        <span class="amount">{{.Total}}</span>
                    </div>
                </div>
            </div>

            <div class="invoice-footer">
                {{- if .Notes}}
                <div class="footer-section">
                    <h3>NOTES:</h3>
                    <p>{{.Notes}}</p>
                </div>
                {{- end}}
                {{- if .Terms}}
                <div class="footer-section">
                    <h3>TERMS:</h3>
                    <p>{{.Terms}}</p>
                </div>
                {{- end}}
                {{- if .Payment}}
                <div class="footer-section payment-details">
                    <h3>PAYMENT DETAILS:</h3>
                    {{- range .Payment}}
                    <p><span class="payment-label">{{.Label}}</span> {{.Value}}</p>
                    {{- end}}
                </div>
                {{- end}}
            </div>
        </div>
    </div>
</body>
</html>
`

const baseCSS = template.CSS(`        * { box-sizing: border-box; margin: 0; padding: 0; }
        body { font-family: 'Inter', 'Segoe UI', sans-serif; background-color: #f9fafb; padding: 20px; line-height: 1.6; font-size: 14px; color: #374151; }
        .invoice-container { max-width: 800px; margin: 20px auto; background: white; border: 1px solid #e5e7eb; border-radius: 8px; }
        .invoice-header { padding: 40px; display: flex; justify-content: flex-end; align-items: flex-start; border-bottom: 1px solid #e5e7eb; }
        .invoice-title { text-align: right; }
        .invoice-title h1 { font-size: 36px; font-weight: 700; color: #111827; margin-bottom: 4px; text-align: right; }
        .invoice-number { color: #6b7280; font-size: 14px; text-align: right; }
        .from-info { margin-top: 20px; }
        .company-name { font-size: 16px; font-weight: 600; color: #111827; margin-bottom: 4px; }
        .company-details { color: #6b7280; font-size: 14px; }
        .invoice-body { padding: 40px; }
        .invoice-meta { display: grid; grid-template-columns: 1fr 1fr; gap: 40px; margin-bottom: 40px; }
        .bill-to h3 { color: #111827; font-size: 12px; font-weight: 500; letter-spacing: 0.5px; text-transform: uppercase; margin-bottom: 12px; }
        .client-name { font-size: 16px; font-weight: 600; color: #111827; margin-bottom: 4px; }
        .client-address { color: #6b7280; font-size: 14px; }
        .invoice-dates { text-align: right; }
        .date-row { margin-bottom: 12px; font-size: 14px; }
        .date-label { color: #6b7280; margin-right: 8px; }
        .date-value { font-weight: 500; color: #111827; }
        .invoice-table { width: 100%; border-collapse: collapse; margin-bottom: 30px; }
        .invoice-table thead { background-color: #f3f4f6; border-bottom: 2px solid #d1d5db; }
        .invoice-table th { padding: 12px; text-align: left; font-size: 12px; font-weight: 600; color: #374151; text-transform: uppercase; letter-spacing: 0.5px; }
        .invoice-table th.text-center { text-align: center; }
        .invoice-table th.text-right { text-align: right; }
        .invoice-table td { padding: 16px 12px; border-bottom: 1px solid #e5e7eb; color: #1f2937; }
        .invoice-table td.text-center { text-align: center; }
        .invoice-table td.text-right { text-align: right; }
        .invoice-table td.amount { font-weight: 600; }
        .totals-section { display: flex; justify-content: flex-end; margin-bottom: 40px; }
        .totals-table { width: 100%; max-width: 350px; }
        .totals-row { display: flex; justify-content: space-between; padding: 12px 0; border-bottom: 1px solid #e5e7eb; font-size: 15px; }
        .totals-row.total { background-color: #f3f4f6; padding: 16px; margin-top: 8px; border-radius: 6px; border: none; font-size: 20px; font-weight: 700; color: #111827; }
        .totals-row.total .amount { color: #111827; }
        .invoice-footer { display: grid; grid-template-columns: 1fr; gap: 40px; margin-top: 40px; padding-top: 30px; border-top: 2px solid #e5e7eb; }
        .footer-section h3 { color: #111827; font-size: 12px; font-weight: 500; letter-spacing: 0.5px; text-transform: uppercase; margin-bottom: 8px; }
        .footer-section p { color: #4b5563; font-size: 14px; line-height: 1.6; white-space: pre-wrap; }
        .payment-label { color: #6b7280; }
        @media (min-width: 640px) { .invoice-footer { grid-template-columns: 1fr 1fr; } }
        @media print { body { background: white; padding: 0; } .invoice-container { border: none; margin: 0; } }`)

// Theme overlays applied after the base stylesheet
var themeCSS = map[string]template.CSS{
	"modern": ``,
	"classic": `        body { font-family: Georgia, 'Times New Roman', serif; background-color: #ffffff; color: #1f2937; }
        .invoice-container { border: 2px solid #1f2937; border-radius: 0; }
        .invoice-header { border-bottom: 2px solid #1f2937; }
        .invoice-title h1 { font-family: Georgia, serif; letter-spacing: 4px; }
        .invoice-table { border: 1px solid #1f2937; }
        .invoice-table thead { background-color: #1f2937; }
        .invoice-table th { color: #ffffff; }
        .invoice-table td { border: 1px solid #d1d5db; }
        .totals-row.total { background-color: transparent; border-top: 2px solid #1f2937; border-radius: 0; }`,
	"minimal": `        body { background-color: #ffffff; padding: 0; }
        .invoice-container { border: none; border-radius: 0; margin: 0 auto; }
        .invoice-header { border-bottom: none; padding-bottom: 0; }
        .invoice-title h1 { font-weight: 500; font-size: 28px; }
        .invoice-table thead { background-color: transparent; border-bottom: 1px solid #111827; }
        .totals-row { border-bottom: none; }
        .totals-row.total { background-color: transparent; padding: 12px 0; border-top: 1px solid #111827; border-radius: 0; }
        .invoice-footer { border-top: 1px solid #e5e7eb; }`,
}
