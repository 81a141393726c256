package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"soulmate/internal/models/request_models"
	"soulmate/internal/services"
	"soulmate/pkg/utils"
)

type PaymentController struct {
	paymentService services.PaymentServiceInterface
	contactService services.ContactServiceInterface
}

func NewPaymentController(paymentService services.PaymentServiceInterface, contactService services.ContactServiceInterface) *PaymentController {
	return &PaymentController{
		paymentService: paymentService,
		contactService: contactService,
	}
}

// CreatePaymentIntent godoc
// @Summary Create a Stripe payment intent for a contact reveal
// @Tags Payments
// @Accept json
// @Produce json
// @Param request body request_models.CreatePaymentIntentRequest true "Price in USD"
// @Success 200 {object} response_models.PaymentIntentResponse
// @Failure 400 {object} map[string]string
// @Security BearerAuth
// @Router /payment/create-payment-intent [post]
func (p *PaymentController) CreatePaymentIntent(c *gin.Context) {
	var req request_models.CreatePaymentIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	clientSecret, err := p.paymentService.CreatePaymentIntent(c.Request.Context(), req.Price)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondData(c, gin.H{"clientSecret": clientSecret})
}

// SavePaymentInfo godoc
// @Summary Record a completed payment as a pending contact request
// @Description Snapshots the target biodata's contact fields; admin approval unlocks them
// @Tags Payments
// @Accept json
// @Produce json
// @Param request body request_models.SavePaymentRequest true "Completed payment payload"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /payment/save-info [post]
func (p *PaymentController) SavePaymentInfo(c *gin.Context) {
	var req request_models.SavePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if err := p.contactService.CreateFromPayment(c.Request.Context(), req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondMessage(c, "Payment successful, request pending approval", nil)
}
