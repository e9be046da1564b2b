package services

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
	config "github.com/lumierehotels/booking-api/configs"
	"github.com/lumierehotels/booking-api/models"
)

// GenerateBookingVoucher renders the stay voucher as PDF and uploads it,
// returning the hosted URL. The booking must be preloaded with Room.Hotel.
func GenerateBookingVoucher(booking models.Booking) (string, error) {
	htmlContent, err := renderVoucherHTML(booking)
	if err != nil {
		return "", fmt.Errorf("render voucher: %w", err)
	}

	pdfBytes, err := printHTMLToPDF(htmlContent)
	if err != nil {
		return "", fmt.Errorf("print voucher: %w", err)
	}

	url, err := uploadVoucher(pdfBytes, booking.Reference)
	if err != nil {
		return "", fmt.Errorf("upload voucher: %w", err)
	}
	return url, nil
}

func renderVoucherHTML(booking models.Booking) (string, error) {
	tmpl, err := template.ParseFiles("templates/voucher.html")
	if err != nil {
		return "", err
	}

	nights := Nights(booking.CheckIn, booking.CheckOut)
	data := struct {
		Reference  string
		GuestName  string
		HotelName  string
		Location   string
		RoomName   string
		CheckIn    string
		CheckOut   string
		Nights     int
		Adults     int
		Children   int
		Extras     []string
		TotalPrice string
		IssuedAt   string
	}{
		Reference:  booking.Reference,
		GuestName:  booking.GuestName,
		HotelName:  booking.Room.Hotel.Name,
		Location:   booking.Room.Hotel.Location,
		RoomName:   booking.Room.Name,
		CheckIn:    booking.CheckIn.Format("02/01/2006"),
		CheckOut:   booking.CheckOut.Format("02/01/2006"),
		Nights:     nights,
		Adults:     booking.Adults,
		Children:   booking.Children,
		Extras:     booking.Extras,
		TotalPrice: fmt.Sprintf("%.2f €", float64(booking.TotalPrice)/100),
		IssuedAt:   time.Now().Format("02/01/2006"),
	}

	var rendered bytes.Buffer
	if err := tmpl.Execute(&rendered, data); err != nil {
		return "", err
	}
	return rendered.String(), nil
}

func printHTMLToPDF(htmlContent string) ([]byte, error) {
	ctx, cancel := chromedp.NewContext(context.Background())
	defer cancel()

	var pdfBuffer []byte
	err := chromedp.Run(ctx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, htmlContent).Do(ctx)
		}),
		chromedp.ActionFunc(func(ctx context.Context) error {
			pdf, _, err := page.PrintToPDF().WithPrintBackground(true).Do(ctx)
			if err != nil {
				return err
			}
			pdfBuffer = pdf
			return nil
		}),
	)
	if err != nil {
		return nil, err
	}
	return pdfBuffer, nil
}

func uploadVoucher(fileBytes []byte, reference string) (string, error) {
	cld, err := cloudinary.NewFromURL(config.Config("CLOUDINARY_URL"))
	if err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	uploadParams := uploader.UploadParams{
		PublicID:     fmt.Sprintf("vouchers/%s_%s", reference, uuid.New().String()),
		Folder:       "lumiere_vouchers",
		ResourceType: "raw",
	}

	uploadResult, err := cld.Upload.Upload(ctx, bytes.NewReader(fileBytes), uploadParams)
	if err != nil {
		return "", err
	}
	return uploadResult.SecureURL, nil
}
