package orders

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/AurifyAE/Aurify-backend/models"
	"github.com/AurifyAE/Aurify-backend/utils"
)

func validItemStatus(s models.ItemStatus) bool {
	switch s {
	case models.ItemPending, models.ItemApproved, models.ItemUserApprovalPending, models.ItemRejected:
		return true
	}
	return false
}

// UpdateOrderQuantityHandler handles PUT /update-order-quantity/:orderId.
// The body names one line item and the admin's verdict on it.
func UpdateOrderQuantityHandler(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	orderID, err := utils.ObjectIDParam(ps, "orderId")
	if err != nil {
		utils.FailFromError(w, err)
		return
	}

	var body struct {
		ItemID     string  `json:"itemId"`
		Quantity   int     `json:"quantity"`
		FixedPrice float64 `json:"fixedPrice"`
		ItemStatus string  `json:"itemStatus"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.Fail(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}

	itemID, err := primitive.ObjectIDFromHex(body.ItemID)
	if err != nil {
		utils.Fail(w, http.StatusBadRequest, "invalid itemId")
		return
	}
	status := models.ItemStatus(body.ItemStatus)
	if !validItemStatus(status) {
		utils.Fail(w, http.StatusBadRequest, "invalid itemStatus")
		return
	}

	order, err := UpdateOrderQuantity(ctx, orderID, LineUpdate{
		ItemID:     itemID,
		Quantity:   body.Quantity,
		FixedPrice: body.FixedPrice,
		ItemStatus: status,
	})
	if err != nil {
		utils.FailFromError(w, err)
		return
	}

	utils.Success(w, http.StatusOK, "Order updated successfully", utils.M{"data": order})
}

// UpdateOrderStatusHandler handles PUT /update-order/:orderId.
func UpdateOrderStatusHandler(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	orderID, err := utils.ObjectIDParam(ps, "orderId")
	if err != nil {
		utils.FailFromError(w, err)
		return
	}

	var body struct {
		OrderStatus string `json:"orderStatus"`
		OrderRemark string `json:"orderRemark"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.Fail(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	if body.OrderStatus == "" {
		utils.Fail(w, http.StatusBadRequest, "orderStatus is required")
		return
	}

	order, err := UpdateOrderStatus(ctx, orderID, models.OrderStatus(body.OrderStatus), body.OrderRemark)
	if err != nil {
		utils.FailFromError(w, err)
		return
	}

	utils.Success(w, http.StatusOK, "Order status updated successfully", utils.M{"data": order})
}

// RejectOrderHandler handles PUT /update-order-reject/:orderId.
func RejectOrderHandler(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	orderID, err := utils.ObjectIDParam(ps, "orderId")
	if err != nil {
		utils.FailFromError(w, err)
		return
	}

	var body struct {
		Remark string `json:"remark"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.Fail(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}

	order, err := RejectOrder(ctx, orderID, body.Remark)
	if err != nil {
		utils.FailFromError(w, err)
		return
	}

	utils.Success(w, http.StatusOK, "Order rejected", utils.M{"data": order})
}

// GetBookingDetails handles GET /booking/:adminId.
func GetBookingDetails(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	adminID, err := utils.ObjectIDParam(ps, "adminId")
	if err != nil {
		utils.FailFromError(w, err)
		return
	}

	bookings, err := FetchBookingDetails(ctx, adminID)
	if err != nil {
		utils.FailFromError(w, err)
		return
	}

	utils.Success(w, http.StatusOK, "Booking details fetched successfully", utils.M{"orderDetails": bookings})
}

// PlaceOrderHandler handles POST /place-order/:userId/:adminId.
func PlaceOrderHandler(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID, err := utils.ObjectIDParam(ps, "userId")
	if err != nil {
		utils.FailFromError(w, err)
		return
	}
	adminID, err := utils.ObjectIDParam(ps, "adminId")
	if err != nil {
		utils.FailFromError(w, err)
		return
	}

	var body struct {
		PaymentMethod  string     `json:"paymentMethod"`
		PricingOption  string     `json:"pricingOption"`
		PremiumAmount  float64    `json:"premiumAmount"`
		DiscountAmount float64    `json:"discountAmount"`
		DeliveryDate   *time.Time `json:"deliveryDate"`
	}
	// An empty body is fine; payment details are optional at placement.
	_ = json.NewDecoder(r.Body).Decode(&body)

	order, err := PlaceOrder(ctx, userID, adminID, PlaceOrderInput{
		PaymentMethod:  body.PaymentMethod,
		PricingOption:  body.PricingOption,
		PremiumAmount:  body.PremiumAmount,
		DiscountAmount: body.DiscountAmount,
		DeliveryDate:   body.DeliveryDate,
	})
	if err != nil {
		utils.FailFromError(w, err)
		return
	}

	utils.Success(w, http.StatusCreated, "Order placed successfully", utils.M{"data": order})
}

// GetUserOrders handles GET /orders/:userId.
func GetUserOrders(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID, err := utils.ObjectIDParam(ps, "userId")
	if err != nil {
		utils.FailFromError(w, err)
		return
	}

	ordersList, err := FetchUserOrders(ctx, userID)
	if err != nil {
		utils.FailFromError(w, err)
		return
	}

	utils.Success(w, http.StatusOK, "Orders fetched successfully", utils.M{"data": ordersList})
}

// PrintOrderReceipt handles GET /order-receipt/:orderId and streams the
// receipt PDF.
func PrintOrderReceipt(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	orderID, err := utils.ObjectIDParam(ps, "orderId")
	if err != nil {
		utils.FailFromError(w, err)
		return
	}

	var order models.Order
	if err := loadOrder(ctx, orderID, &order); err != nil {
		utils.FailFromError(w, err)
		return
	}

	pdfBytes, err := OrderReceiptPDF(ctx, &order)
	if err != nil {
		utils.Fail(w, http.StatusInternalServerError, "Failed to generate receipt")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=receipt-"+order.OrderNumber+".pdf")
	w.WriteHeader(http.StatusOK)
	w.Write(pdfBytes)
}
