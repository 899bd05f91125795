package user

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	qrcode "github.com/skip2/go-qrcode"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const qrHistoryLimit = 5

// GenerateQRCode renders a plain-text identity card with the user's five
// most recent submissions and encodes it as a PNG data URI. Collection
// staff scan this instead of looking the citizen up by hand.
func (s *UserServiceImpl) GenerateQRCode(ctx context.Context, id string) (string, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return "", ErrNotFound
	}

	u, err := s.Repo.FindByID(ctx, oid)
	if err != nil {
		return "", err
	}

	requests, err := s.WasteRepo.FindByUser(ctx, oid)
	if err != nil {
		return "", err
	}
	donations, err := s.DonationRepo.FindByUser(ctx, oid)
	if err != nil {
		return "", err
	}
	if len(requests) > qrHistoryLimit {
		requests = requests[:qrHistoryLimit]
	}
	if len(donations) > qrHistoryLimit {
		donations = donations[:qrHistoryLimit]
	}

	var sb strings.Builder
	sb.WriteString("User Details\n")
	sb.WriteString("------------------------------\n")
	fmt.Fprintf(&sb, "Name    : %s\n", u.Name)
	fmt.Fprintf(&sb, "Email   : %s\n", u.Email)
	fmt.Fprintf(&sb, "Address : %s\n", u.Address)
	sb.WriteString("Recent History\n")
	sb.WriteString("--------------------------------------------------\n")
	sb.WriteString("Type                 | Date       | Status    \n")
	sb.WriteString("--------------------------------------------------\n")

	for _, r := range requests {
		sb.WriteString(qrRow(string(r.Classification), r.CreatedAt, string(r.Status)))
	}
	for _, d := range donations {
		sb.WriteString(qrRow(d.ItemType, d.CreatedAt, string(d.Status)))
	}
	if len(requests) == 0 && len(donations) == 0 {
		sb.WriteString("No recent history.\n")
	}

	png, err := qrcode.Encode(sb.String(), qrcode.Medium, 256)
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}

func qrRow(kind string, date time.Time, status string) string {
	return fmt.Sprintf("%s | %s | %s\n",
		qrPad(kind, 20),
		qrPad(date.Format("02/01/2006"), 10),
		qrPad(status, 10),
	)
}

func qrPad(s string, width int) string {
	if len(s) > width {
		return s[:width]
	}
	return s + strings.Repeat(" ", width-len(s))
}
