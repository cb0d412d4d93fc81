package notify

import (
	"fmt"

	"github.com/Lex0104/Saphir/internal/models"
)

// ReservationURL points at the reservation's management endpoint. With an
// empty base the link stays relative, matching mail built outside a request.
func ReservationURL(baseURL string, id uint) string {
	return fmt.Sprintf("%s/api/reservations/%d", baseURL, id)
}

func guestLine(res *models.Reservation) string {
	if res.Owner == nil {
		return "unknown guest"
	}
	return fmt.Sprintf("%s - %s", res.Owner.FullName(), res.Owner.Email)
}

func tableNumber(res *models.Reservation) uint {
	if res.Table != nil {
		return res.Table.Number
	}
	return 0
}

func reservationDetails(res *models.Reservation) string {
	return fmt.Sprintf(
		"Date: %s\nTime: %s\nGuest: %s\nTable #%d\nComment: %s\n",
		res.Date, res.Time, guestLine(res), tableNumber(res), res.Comment,
	)
}

// BuildReservationMail renders the subject and body for a lifecycle action.
// Created and updated mail carries a confirmation link; cancelled mail does
// not, since the reservation may no longer resolve. Unknown actions yield
// empty strings.
func BuildReservationMail(res *models.Reservation, action Action, baseURL string) (string, string) {
	url := ReservationURL(baseURL, res.ID)

	switch action {
	case ActionCreated:
		return "NEW RESERVATION!!!",
			fmt.Sprintf("NEW RESERVATION!\n\n%sConfirmation link: %s", reservationDetails(res), url)

	case ActionUpdated:
		return "RESERVATION CHANGED!!!",
			fmt.Sprintf("RESERVATION CHANGED!\n\n%sConfirmation link: %s", reservationDetails(res), url)

	case ActionDeleted:
		return "RESERVATION CANCELLED!!!",
			fmt.Sprintf("RESERVATION CANCELLED!\n\n%s", reservationDetails(res))
	}

	return "", ""
}

// BuildReminderMail renders the same-day reminder sent to the guest.
func BuildReminderMail(res *models.Reservation) (string, string) {
	name := "guest"
	if res.Owner != nil {
		name = res.Owner.FullName()
	}

	body := fmt.Sprintf(
		"Hello, %s!\n\n"+
			"You have a table reserved: table #%d.\n"+
			"Reservation date: %s.\n"+
			"Reservation time: %s.\n\n"+
			"Thank you for choosing us!",
		name, tableNumber(res), res.Date, res.Time,
	)

	return "YOUR TABLE IS RESERVED!!!", body
}

// BuildFeedbackMail renders the home-page feedback form mail.
func BuildFeedbackMail(email, message string) (string, string) {
	return "Website feedback",
		fmt.Sprintf("From: %s\n\nMessage:\n%s", email, message)
}
