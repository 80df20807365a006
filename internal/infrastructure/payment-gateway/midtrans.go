package paymentgateway

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Humayun167/green-nest/config"
	circuitbreaker "github.com/Humayun167/green-nest/internal/infrastructure/circuit-breaker"
	"github.com/Humayun167/green-nest/pkg/errs"
	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/coreapi"
	"github.com/sony/gobreaker/v2"
)

// Midtrans reports expiry times in Western Indonesia Time.
const expiryLayout = "2006-01-02 15:04:05"

type ChargeItem struct {
	ID       string
	Name     string
	Price    int64
	Quantity int32
}

type ChargeRequest struct {
	OrderID       string
	GrossAmount   int64
	CustomerName  string
	CustomerEmail string
	Items         []ChargeItem
}

type ChargeAction struct {
	Name   string
	Method string
	URL    string
}

type ChargeResult struct {
	TransactionID string
	QRString      string
	Actions       []ChargeAction
	ExpiredAt     *time.Time
}

type MidtransGateway struct {
	client *coreapi.Client
	cb     *gobreaker.CircuitBreaker[*coreapi.ChargeResponse]
}

func CreateMidtransClient(config *config.Config) *coreapi.Client {
	environment := midtrans.Sandbox
	if config.MidtransConfig.Production {
		environment = midtrans.Production
	}

	client := &coreapi.Client{}
	client.New(config.MidtransConfig.ServerKey, environment)

	return client
}

func CreateMidtransGateway(client *coreapi.Client) *MidtransGateway {
	return &MidtransGateway{
		client: client,
		cb:     circuitbreaker.CreateCircuitBreaker[*coreapi.ChargeResponse]("midtrans"),
	}
}

// ChargeQris opens a QRIS transaction for req.
func (g *MidtransGateway) ChargeQris(ctx context.Context, req ChargeRequest) (ChargeResult, error) {
	items := make([]midtrans.ItemDetails, len(req.Items))
	for i, item := range req.Items {
		items[i] = midtrans.ItemDetails{
			ID:    item.ID,
			Name:  item.Name,
			Price: item.Price,
			Qty:   item.Quantity,
		}
	}

	chargeReq := &coreapi.ChargeReq{
		PaymentType: coreapi.PaymentTypeQris,
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  req.OrderID,
			GrossAmt: req.GrossAmount,
		},
		CustomerDetails: &midtrans.CustomerDetails{
			FName: req.CustomerName,
			Email: req.CustomerEmail,
		},
		Items: &items,
	}

	response, err := g.cb.Execute(func() (*coreapi.ChargeResponse, error) {
		resp, midtransErr := g.client.ChargeTransaction(chargeReq)
		if midtransErr != nil {
			return nil, midtransErr
		}
		if resp.StatusCode != "201" {
			return nil, fmt.Errorf("payment gateway returned status %s: %s", resp.StatusCode, resp.StatusMessage)
		}
		return resp, nil
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return ChargeResult{}, fmt.Errorf("%w: %v", errs.ErrServiceUnavailable, err)
	}
	if err != nil {
		return ChargeResult{}, fmt.Errorf("%w: %v", errs.ErrUpstream, err)
	}

	result := ChargeResult{
		TransactionID: response.TransactionID,
		QRString:      response.QRString,
	}
	for _, action := range response.Actions {
		result.Actions = append(result.Actions, ChargeAction{
			Name:   action.Name,
			Method: action.Method,
			URL:    action.URL,
		})
	}

	if expiredAt, parseErr := parseExpiryTime(response.ExpiryTime); parseErr == nil {
		result.ExpiredAt = &expiredAt
	}

	return result, nil
}

func parseExpiryTime(value string) (time.Time, error) {
	location, err := time.LoadLocation("Asia/Jakarta")
	if err != nil {
		return time.Time{}, err
	}

	return time.ParseInLocation(expiryLayout, value, location)
}
