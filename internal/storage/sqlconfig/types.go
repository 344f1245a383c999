package sqlconfig

import "errors"

// ErrNotFound is returned by every table when the addressed row does not exist.
var ErrNotFound = errors.New("record not found")

type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

type Frequency string

const (
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
	FrequencyYearly  Frequency = "yearly"
)

type RecurringSource string

const (
	RecurringSourceDedicated          RecurringSource = "dedicated"
	RecurringSourceRegularTransaction RecurringSource = "regular_transaction"
)
