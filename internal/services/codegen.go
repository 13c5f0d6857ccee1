package services

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/bactien/YCBG/internal/models"
	"github.com/bactien/YCBG/internal/repo"
)

const customerCodePrefix = "KH-"

// CodeGenerator produces the next sequential human-readable codes by
// scanning existing records for the highest numeric suffix. A process-wide
// mutex serializes generation so two near-simultaneous creations in this
// process cannot hand out the same code; across processes the scan stays
// last-writer-wins, matching the rest of the storage model.
type CodeGenerator struct {
	mu         sync.Mutex
	Customers  *repo.Repo[models.Customer, *models.Customer]
	Quotations *repo.Repo[models.QuotationRequest, *models.QuotationRequest]
	Now        func() time.Time
}

func NewCodeGenerator(customers *repo.Repo[models.Customer, *models.Customer], quotations *repo.Repo[models.QuotationRequest, *models.QuotationRequest]) *CodeGenerator {
	return &CodeGenerator{Customers: customers, Quotations: quotations, Now: time.Now}
}

// NextCustomerCode returns KH- plus a 5-digit zero-padded sequence, one past
// the highest suffix found over all customers.
func (g *CodeGenerator) NextCustomerCode() (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	customers, err := g.Customers.All("")
	if err != nil {
		return "", err
	}
	maxNum := 0
	for _, c := range customers {
		num, err := strconv.Atoi(strings.TrimPrefix(c.Code, customerCodePrefix))
		if err != nil {
			continue
		}
		if num > maxNum {
			maxNum = num
		}
	}
	return fmt.Sprintf("%s%05d", customerCodePrefix, maxNum+1), nil
}

// NextRequestCode returns YCBG-<yyyy><mm>- plus a 4-digit sequence. The scan
// only considers codes carrying the current month's prefix, so the sequence
// implicitly resets each month.
func (g *CodeGenerator) NextRequestCode() (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	now := g.Now()
	prefix := fmt.Sprintf("YCBG-%04d%02d-", now.Year(), int(now.Month()))
	quotations, err := g.Quotations.All("")
	if err != nil {
		return "", err
	}
	maxNum := 0
	for _, q := range quotations {
		if !strings.HasPrefix(q.Code, prefix) {
			continue
		}
		num, err := strconv.Atoi(strings.TrimPrefix(q.Code, prefix))
		if err != nil {
			continue
		}
		if num > maxNum {
			maxNum = num
		}
	}
	return fmt.Sprintf("%s%04d", prefix, maxNum+1), nil
}
