package orders

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"os"
	"time"

	"github.com/AurifyAE/Aurify-backend/db"
	"github.com/AurifyAE/Aurify-backend/models"
	"github.com/phpdave11/gofpdf"
	"github.com/skip2/go-qrcode"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func receiptSecret() []byte {
	if s := os.Getenv("RECEIPT_SECRET"); s != "" {
		return []byte(s)
	}
	return []byte("aurify_receipt_secret")
}

// ReceiptQRPayload returns a signed payload: orderID|orderNumber|timestamp|signature.
// The signature lets the shop verify a scanned receipt was issued here.
func ReceiptQRPayload(orderID, orderNumber string) string {
	data := fmt.Sprintf("%s|%s|%d", orderID, orderNumber, time.Now().Unix())

	h := hmac.New(sha256.New, receiptSecret())
	h.Write([]byte(data))
	sig := base64.StdEncoding.EncodeToString(h.Sum(nil))

	return fmt.Sprintf("%s|%s", data, sig)
}

// OrderReceiptPDF renders the order as a printable receipt with a signed
// QR code.
func OrderReceiptPDF(ctx context.Context, order *models.Order) ([]byte, error) {
	titles, err := productTitles(ctx, order)
	if err != nil {
		return nil, err
	}

	var customer models.User
	customerName := "Customer"
	if err := db.UsersCollection.FindOne(ctx, bson.M{"_id": order.UserID}).Decode(&customer); err == nil {
		customerName = customer.Name
	}

	qrPNG, err := qrcode.Encode(ReceiptQRPayload(order.ID.Hex(), order.OrderNumber), qrcode.Medium, 256)
	if err != nil {
		return nil, fmt.Errorf("failed to generate QR code: %w", err)
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, "Order Receipt")
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 12)
	pdf.Cell(0, 10, fmt.Sprintf("Order Number: %s", order.OrderNumber))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("Customer: %s", customerName))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("Date: %s", order.OrderDate.Format("02 Jan 2006 15:04")))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("Status: %s", order.OrderStatus))
	pdf.Ln(12)

	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(90, 8, "Item", "1", 0, "L", false, 0, "")
	pdf.CellFormat(20, 8, "Qty", "1", 0, "C", false, 0, "")
	pdf.CellFormat(35, 8, "Price", "1", 0, "R", false, 0, "")
	pdf.CellFormat(35, 8, "Total", "1", 1, "R", false, 0, "")

	pdf.SetFont("Arial", "", 11)
	for _, it := range order.Items {
		title := titles[it.ProductID]
		if title == "" {
			title = it.ProductID.Hex()
		}
		pdf.CellFormat(90, 8, title, "1", 0, "L", false, 0, "")
		pdf.CellFormat(20, 8, fmt.Sprintf("%d", it.Quantity), "1", 0, "C", false, 0, "")
		pdf.CellFormat(35, 8, fmt.Sprintf("%.2f", it.FixedPrice), "1", 0, "R", false, 0, "")
		pdf.CellFormat(35, 8, fmt.Sprintf("%.2f", float64(it.Quantity)*it.FixedPrice), "1", 1, "R", false, 0, "")
	}

	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(145, 8, "Grand Total", "1", 0, "R", false, 0, "")
	pdf.CellFormat(35, 8, fmt.Sprintf("%.2f", order.TotalPrice), "1", 1, "R", false, 0, "")

	imageOpts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("qr", imageOpts, bytes.NewReader(qrPNG))
	pdf.ImageOptions("qr", 150, 20, 40, 40, false, imageOpts, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}
	return buf.Bytes(), nil
}

func productTitles(ctx context.Context, order *models.Order) (map[primitive.ObjectID]string, error) {
	ids := make([]primitive.ObjectID, 0, len(order.Items))
	for _, it := range order.Items {
		ids = append(ids, it.ProductID)
	}

	cursor, err := db.ProductsCollection.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	titles := make(map[primitive.ObjectID]string, len(ids))
	for cursor.Next(ctx) {
		var p models.Product
		if err := cursor.Decode(&p); err != nil {
			return nil, err
		}
		titles[p.ID] = p.Title
	}
	return titles, cursor.Err()
}
