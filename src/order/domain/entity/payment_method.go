package entity

import "strings"

// PaymentMethod forma de pago del pedido
type PaymentMethod string

const (
	PaymentCash          PaymentMethod = "CASH"
	PaymentCreditCard    PaymentMethod = "CREDIT_CARD"
	PaymentDebitCard     PaymentMethod = "DEBIT_CARD"
	PaymentPix           PaymentMethod = "PIX"
	PaymentBankTransfer  PaymentMethod = "BANK_TRANSFER"
	PaymentBoleto        PaymentMethod = "BOLETO"
	PaymentDigitalWallet PaymentMethod = "DIGITAL_WALLET"
	PaymentMealVoucher   PaymentMethod = "MEAL_VOUCHER"
	PaymentFoodVoucher   PaymentMethod = "FOOD_VOUCHER"
	PaymentCoupon        PaymentMethod = "COUPON"
	PaymentOther         PaymentMethod = "OTHER"
)

var PaymentMethods = []PaymentMethod{
	PaymentCash, PaymentCreditCard, PaymentDebitCard, PaymentPix, PaymentBankTransfer,
	PaymentBoleto, PaymentDigitalWallet, PaymentMealVoucher, PaymentFoodVoucher,
	PaymentCoupon, PaymentOther,
}

func (p PaymentMethod) Description() string {
	switch p {
	case PaymentCash:
		return "Cash"
	case PaymentCreditCard:
		return "Credit Card"
	case PaymentDebitCard:
		return "Debit Card"
	case PaymentPix:
		return "PIX"
	case PaymentBankTransfer:
		return "Bank Transfer"
	case PaymentBoleto:
		return "Boleto"
	case PaymentDigitalWallet:
		return "Digital Wallet"
	case PaymentMealVoucher:
		return "Meal Voucher"
	case PaymentFoodVoucher:
		return "Food Voucher"
	case PaymentCoupon:
		return "Coupon"
	case PaymentOther:
		return "Other"
	default:
		return ""
	}
}

func (p PaymentMethod) Valid() bool {
	return p.Description() != ""
}

// Digital pagos electrónicos
func (p PaymentMethod) Digital() bool {
	switch p {
	case PaymentPix, PaymentCreditCard, PaymentDebitCard, PaymentDigitalWallet, PaymentBankTransfer:
		return true
	default:
		return false
	}
}

func (p PaymentMethod) Cash() bool {
	return p == PaymentCash
}

func (p PaymentMethod) Card() bool {
	return p == PaymentCreditCard || p == PaymentDebitCard
}

func (p PaymentMethod) Voucher() bool {
	return p == PaymentMealVoucher || p == PaymentFoodVoucher
}

// RequiresProcessing todo excepto efectivo y cupón
func (p PaymentMethod) RequiresProcessing() bool {
	return p != PaymentCash && p != PaymentCoupon
}

// ParsePaymentMethod acepta el código o la descripción, sin distinguir mayúsculas
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	s = strings.TrimSpace(s)
	for _, p := range PaymentMethods {
		if strings.EqualFold(string(p), s) || strings.EqualFold(p.Description(), s) {
			return p, nil
		}
	}
	return "", ErrInvalidPaymentMethod
}
