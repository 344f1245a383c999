package service

import (
	"strings"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// ParseFrequency accepts only weekly, monthly and yearly.
func ParseFrequency(s string) (Frequency, error) {
	switch f := Frequency(s); f {
	case FrequencyWeekly, FrequencyMonthly, FrequencyYearly:
		return f, nil
	}
	return "", &ValidationError{Field: "frequency", Message: "must be one of weekly, monthly, yearly"}
}

func ParseTransactionType(s string) (TransactionType, error) {
	switch t := TransactionType(s); t {
	case TransactionTypeIncome, TransactionTypeExpense:
		return t, nil
	}
	return "", &ValidationError{Field: "type", Message: "must be income or expense"}
}

func ParseRecurringSource(s string) (RecurringSource, error) {
	switch src := RecurringSource(s); src {
	case RecurringSourceDedicated, RecurringSourceRegularTransaction:
		return src, nil
	}
	return "", &ValidationError{Field: "source", Message: "must be dedicated or regular_transaction"}
}

// ParseDate reads a YYYY-MM-DD calendar date.
func ParseDate(field, s string) (civil.Date, error) {
	d, err := civil.ParseDate(s)
	if err != nil {
		return civil.Date{}, &ValidationError{Field: field, Message: "must be a date in YYYY-MM-DD format"}
	}
	return d, nil
}

func validateAmount(field string, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return &ValidationError{Field: field, Message: "must be a positive number"}
	}
	return nil
}

func validateRequired(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return &ValidationError{Field: field, Message: "is required"}
	}
	return nil
}

func validateTransactionType(t TransactionType) error {
	_, err := ParseTransactionType(string(t))
	return err
}

func validateFrequency(f Frequency) error {
	_, err := ParseFrequency(string(f))
	return err
}

func (in *TransactionInput) validate() error {
	if err := validateTransactionType(in.Type); err != nil {
		return err
	}
	if err := validateAmount("amount", in.Amount); err != nil {
		return err
	}
	if err := validateRequired("category", in.Category); err != nil {
		return err
	}
	if !in.Date.IsValid() {
		return &ValidationError{Field: "date", Message: "must be a valid date"}
	}
	if in.RecurrenceFrequency != nil {
		return validateFrequency(*in.RecurrenceFrequency)
	}
	return nil
}

func (p *TransactionPatch) validate() error {
	if p.Type != nil {
		if err := validateTransactionType(*p.Type); err != nil {
			return err
		}
	}
	if p.Amount != nil {
		if err := validateAmount("amount", *p.Amount); err != nil {
			return err
		}
	}
	if p.Category != nil {
		if err := validateRequired("category", *p.Category); err != nil {
			return err
		}
	}
	if p.Date != nil && !p.Date.IsValid() {
		return &ValidationError{Field: "date", Message: "must be a valid date"}
	}
	if p.RecurrenceFrequency != nil {
		return validateFrequency(*p.RecurrenceFrequency)
	}
	return nil
}

// normalize fills defaults and rejects out-of-range paging.
func (f *TransactionListFilter) normalize() error {
	if f.Page == 0 {
		f.Page = DefaultPage
	}
	if f.Limit == 0 {
		f.Limit = DefaultLimit
	}
	if f.Page < 1 {
		return &ValidationError{Field: "page", Message: "must be at least 1"}
	}
	if f.Limit < 1 || f.Limit > MaxLimit {
		return &ValidationError{Field: "limit", Message: "must be between 1 and 100"}
	}
	if f.Type != nil {
		if err := validateTransactionType(*f.Type); err != nil {
			return err
		}
	}
	return nil
}

func (in *RecurringTransactionInput) validate() error {
	if err := validateRequired("name", in.Name); err != nil {
		return err
	}
	if err := validateTransactionType(in.Type); err != nil {
		return err
	}
	if err := validateAmount("amount", in.Amount); err != nil {
		return err
	}
	if err := validateRequired("category", in.Category); err != nil {
		return err
	}
	if err := validateFrequency(in.Frequency); err != nil {
		return err
	}
	if !in.StartDate.IsValid() {
		return &ValidationError{Field: "start_date", Message: "must be a valid date"}
	}
	return nil
}

func (p *RecurringTransactionPatch) validate() error {
	if p.Name != nil {
		if err := validateRequired("name", *p.Name); err != nil {
			return err
		}
	}
	if p.Type != nil {
		if err := validateTransactionType(*p.Type); err != nil {
			return err
		}
	}
	if p.Amount != nil {
		if err := validateAmount("amount", *p.Amount); err != nil {
			return err
		}
	}
	if p.Category != nil {
		if err := validateRequired("category", *p.Category); err != nil {
			return err
		}
	}
	if p.Frequency != nil {
		if err := validateFrequency(*p.Frequency); err != nil {
			return err
		}
	}
	if p.StartDate != nil && !p.StartDate.IsValid() {
		return &ValidationError{Field: "start_date", Message: "must be a valid date"}
	}
	return nil
}
