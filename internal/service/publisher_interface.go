package service

//go:generate mockgen -source=publisher_interface.go -destination=../mocks/mock_publisher.go -package=mocks

import (
	"context"

	"github.com/cypherlabdev/odds-translation-proxy/internal/models"
)

// ReceiptPublisher is an interface that abstracts publishing of placed-bet receipts
type ReceiptPublisher interface {
	PublishReceipt(ctx context.Context, receipt models.DecimalPlacedBet, sent models.FractionalOdds) error
}
