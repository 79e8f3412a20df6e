package mailer

import (
	"bytes"
	"fmt"
	"html/template"
	"time"
)

// templateData is EmailRequest plus the human-formatted fields the template
// renders.
type templateData struct {
	EmailRequest
	CheckInFormatted  string
	CheckOutFormatted string
	TotalFormatted    string
}

var confirmationTmpl = template.Must(template.New("confirmation").Parse(`<!DOCTYPE html>
<html dir="rtl" lang="he">
<head>
<meta charset="utf-8">
<style>
  body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px; }
  .header { background: linear-gradient(135deg, #8B7355 0%, #A0826D 100%); color: white; padding: 30px; text-align: center; border-radius: 10px 10px 0 0; }
  .content { background: #f9f9f9; padding: 30px; border: 1px solid #ddd; }
  .booking-details { background: white; padding: 20px; border-radius: 8px; margin: 20px 0; }
  .detail-row { display: flex; justify-content: space-between; padding: 10px 0; border-bottom: 1px solid #eee; }
  .detail-row:last-child { border-bottom: none; font-weight: bold; font-size: 1.2em; color: #8B7355; }
  .footer { background: #333; color: white; padding: 20px; text-align: center; border-radius: 0 0 10px 10px; }
</style>
</head>
<body>
  <div class="header">
    <h1>🏨 מלון DELUX</h1>
    <p>אישור הזמנה</p>
  </div>
  <div class="content">
    <p>שלום {{.GuestName}},</p>
    <p>תודה שבחרת במלון DELUX! ההזמנה שלך אושרה בהצלחה.</p>
    <div class="booking-details">
      <h2 style="color: #8B7355; margin-top: 0;">פרטי ההזמנה</h2>
      <div class="detail-row"><span>מספר הזמנה:</span><strong>{{.BookingID}}</strong></div>
      <div class="detail-row"><span>סוג חדר:</span><strong>{{.RoomName}}</strong></div>
      <div class="detail-row"><span>תאריך כניסה:</span><strong>{{.CheckInFormatted}}</strong></div>
      <div class="detail-row"><span>תאריך יציאה:</span><strong>{{.CheckOutFormatted}}</strong></div>
      <div class="detail-row"><span>מספר לילות:</span><strong>{{.Nights}}</strong></div>
      <div class="detail-row"><span>מספר אורחים:</span><strong>{{.NumGuests}}</strong></div>
      {{if .SpecialRequests}}<div class="detail-row"><span>בקשות מיוחדות:</span><strong>{{.SpecialRequests}}</strong></div>{{end}}
      <div class="detail-row"><span>סה"כ לתשלום:</span><strong>₪{{.TotalFormatted}}</strong></div>
    </div>
    <p><strong>הערות חשובות:</strong></p>
    <ul>
      <li>שעת צ'ק-אין: 15:00</li>
      <li>שעת צ'ק-אאוט: 11:00</li>
      <li>נא להציג תעודת זהות בעת הצ'ק-אין</li>
    </ul>
    <p>לשאלות נוספות, אנא צרו קשר במספר: 03-1234567</p>
  </div>
  <div class="footer">
    <p>מלון DELUX | רחוב הדוגמה 123, תל אביב</p>
    <p>טלפון: 03-1234567 | דוא"ל: info@deluxhotel.com</p>
  </div>
</body>
</html>`))

func renderConfirmation(req EmailRequest) (string, error) {
	data := templateData{
		EmailRequest:      req,
		CheckInFormatted:  formatDate(req.CheckInDate),
		CheckOutFormatted: formatDate(req.CheckOutDate),
		TotalFormatted:    fmt.Sprintf("%.0f", req.TotalPrice),
	}

	var buf bytes.Buffer
	if err := confirmationTmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render confirmation: %w", err)
	}
	return buf.String(), nil
}

// formatDate turns the wire date into the dd.mm.yyyy form used in the email;
// unparseable input is shown as received.
func formatDate(s string) string {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return s
	}
	return t.Format("02.01.2006")
}
