package service

import (
	"math"
	"sort"

	"github.com/shopspring/decimal"
)

// NewPagination derives page metadata. A total of zero yields zero pages.
func NewPagination(page, limit, total int) Pagination {
	totalPages := 0
	if limit > 0 {
		totalPages = int(math.Ceil(float64(total) / float64(limit)))
	}
	return Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
		HasPrev:    page > 1,
	}
}

func ComputeStats(transactions []Transaction) TransactionStats {
	stats := TransactionStats{
		TotalIncome:      decimal.Zero,
		TotalExpenses:    decimal.Zero,
		TransactionCount: len(transactions),
	}
	for _, tx := range transactions {
		switch tx.Type {
		case TransactionTypeIncome:
			stats.TotalIncome = stats.TotalIncome.Add(tx.Amount)
		case TransactionTypeExpense:
			stats.TotalExpenses = stats.TotalExpenses.Add(tx.Amount)
		}
	}
	stats.NetAmount = stats.TotalIncome.Sub(stats.TotalExpenses)
	return stats
}

// SpendingByCategory groups expenses by category, largest total first.
// Ties are ordered by category name. Income is ignored.
func SpendingByCategory(transactions []Transaction) []CategoryStat {
	index := map[string]int{}
	result := []CategoryStat{}
	for _, tx := range transactions {
		if tx.Type != TransactionTypeExpense {
			continue
		}
		i, ok := index[tx.Category]
		if !ok {
			i = len(result)
			index[tx.Category] = i
			result = append(result, CategoryStat{Category: tx.Category, Total: decimal.Zero})
		}
		result[i].Total = result[i].Total.Add(tx.Amount)
		result[i].Count++
	}

	sort.SliceStable(result, func(a, b int) bool {
		if c := result[a].Total.Cmp(result[b].Total); c != 0 {
			return c > 0
		}
		return result[a].Category < result[b].Category
	})
	return result
}

type monthKey struct {
	year  int
	month int
}

// ComputeMonthlyStats buckets income and expenses by calendar month, oldest first.
func ComputeMonthlyStats(transactions []Transaction) []MonthlyStat {
	buckets := map[monthKey]*MonthlyStat{}
	keys := []monthKey{}
	for _, tx := range transactions {
		key := monthKey{year: tx.Date.Year, month: int(tx.Date.Month)}
		bucket, ok := buckets[key]
		if !ok {
			bucket = &MonthlyStat{
				Month:    tx.Date.Month.String()[:3],
				Year:     tx.Date.Year,
				Income:   decimal.Zero,
				Expenses: decimal.Zero,
			}
			buckets[key] = bucket
			keys = append(keys, key)
		}
		switch tx.Type {
		case TransactionTypeIncome:
			bucket.Income = bucket.Income.Add(tx.Amount)
		case TransactionTypeExpense:
			bucket.Expenses = bucket.Expenses.Add(tx.Amount)
		}
	}

	sort.Slice(keys, func(a, b int) bool {
		if keys[a].year != keys[b].year {
			return keys[a].year < keys[b].year
		}
		return keys[a].month < keys[b].month
	})

	result := make([]MonthlyStat, 0, len(keys))
	for _, key := range keys {
		result = append(result, *buckets[key])
	}
	return result
}
