package store

import (
	"fmt"
	"time"

	"jewelmart/models"

	"gorm.io/gorm"
)

// monthlySequence counts rows of model created within now's calendar month
// and returns count+1. Callers run it inside the same transaction as the
// insert so two sequential creations cannot observe the same count. Under
// truly concurrent writers sqlite serializes the transactions; a dialect
// without that guarantee would need an atomic counter table instead.
func monthlySequence(tx *gorm.DB, model interface{}, now time.Time) (int64, error) {
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	end := start.AddDate(0, 1, 0)
	var count int64
	if err := tx.Model(model).Where("created_at >= ? AND created_at < ?", start, end).Count(&count).Error; err != nil {
		return 0, err
	}
	return count + 1, nil
}

// --- Bills ---

// CreateBill persists an admin invoice. Total is subtotal + making charges +
// gst - discount; a zero-valued discount contributes nothing. Line items are
// stored verbatim.
func (s *Store) CreateBill(bill *models.Bill) (*models.Bill, error) {
	bill.Total = bill.Subtotal.Add(bill.MakingCharges).Add(bill.GST).Sub(bill.Discount)
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if bill.BillNumber == "" {
			now := time.Now()
			seq, err := monthlySequence(tx, &models.Bill{}, now)
			if err != nil {
				return err
			}
			bill.BillNumber = fmt.Sprintf("PJ-BILL-%d-%02d-%03d", now.Year(), int(now.Month()), seq)
		}
		return translate(tx.Create(bill).Error)
	})
	if err != nil {
		return nil, err
	}
	return bill, nil
}

func (s *Store) GetBill(id string) (*models.Bill, error) {
	var bill models.Bill
	if err := s.db.First(&bill, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &bill, nil
}

func (s *Store) GetBills(from, to *time.Time) ([]models.Bill, error) {
	q := s.db.Order("created_at DESC")
	if from != nil {
		q = q.Where("created_at >= ?", *from)
	}
	if to != nil {
		q = q.Where("created_at < ?", *to)
	}
	var bills []models.Bill
	if err := q.Find(&bills).Error; err != nil {
		return nil, err
	}
	return bills, nil
}

// UpdateBill writes exactly the columns named in cols from updates, then
// recomputes the total from the resulting components so a partial price edit
// cannot leave a stale header total behind. Because the column list is
// explicit, a monetary component can be cleared back to zero.
func (s *Store) UpdateBill(id string, updates *models.Bill, cols []string) (*models.Bill, error) {
	var existing models.Bill
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&existing, "id = ?", id).Error; err != nil {
			return translate(err)
		}
		if len(cols) > 0 {
			if err := tx.Model(&existing).Select(cols).Updates(updates).Error; err != nil {
				return translate(err)
			}
		}
		if err := tx.First(&existing, "id = ?", id).Error; err != nil {
			return translate(err)
		}
		total := existing.Subtotal.Add(existing.MakingCharges).Add(existing.GST).Sub(existing.Discount)
		if err := tx.Model(&existing).Update("total", total).Error; err != nil {
			return err
		}
		existing.Total = total
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &existing, nil
}

func (s *Store) DeleteBill(id string) (bool, error) {
	res := s.db.Delete(&models.Bill{}, "id = ?", id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// --- Estimates ---

// CreateEstimate persists a quotation. The quotation number is
// PJ-QTN-<year>-<month>-<seq>, where seq is the count of estimates created
// this calendar month plus one, zero-padded to three digits. Counting and
// inserting happen in one transaction; see monthlySequence for the
// concurrency caveat.
func (s *Store) CreateEstimate(estimate *models.Estimate) (*models.Estimate, error) {
	estimate.Total = estimate.Subtotal.Add(estimate.MakingCharges).Add(estimate.GST).Sub(estimate.Discount)
	if estimate.Status == "" {
		estimate.Status = models.EstimateStatusPending
	}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		now := time.Now()
		seq, err := monthlySequence(tx, &models.Estimate{}, now)
		if err != nil {
			return err
		}
		estimate.QuotationNo = fmt.Sprintf("PJ-QTN-%d-%02d-%03d", now.Year(), int(now.Month()), seq)
		return translate(tx.Create(estimate).Error)
	})
	if err != nil {
		return nil, err
	}
	return estimate, nil
}

func (s *Store) GetEstimate(id string) (*models.Estimate, error) {
	var estimate models.Estimate
	if err := s.db.First(&estimate, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &estimate, nil
}

func (s *Store) GetEstimates(status models.EstimateStatus) ([]models.Estimate, error) {
	q := s.db.Order("created_at DESC")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var estimates []models.Estimate
	if err := q.Find(&estimates).Error; err != nil {
		return nil, err
	}
	return estimates, nil
}

// UpdateEstimate writes exactly the columns named in cols, like UpdateBill,
// and returns ErrNotFound for a missing id like every other update here. The
// quotation number is never touched: it is stripped from both the updates
// and the column list.
func (s *Store) UpdateEstimate(id string, updates *models.Estimate, cols []string) (*models.Estimate, error) {
	updates.QuotationNo = ""
	kept := make([]string, 0, len(cols))
	for _, col := range cols {
		if col != "quotation_no" {
			kept = append(kept, col)
		}
	}
	var existing models.Estimate
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&existing, "id = ?", id).Error; err != nil {
			return translate(err)
		}
		if len(kept) > 0 {
			if err := tx.Model(&existing).Select(kept).Updates(updates).Error; err != nil {
				return translate(err)
			}
		}
		if err := tx.First(&existing, "id = ?", id).Error; err != nil {
			return translate(err)
		}
		total := existing.Subtotal.Add(existing.MakingCharges).Add(existing.GST).Sub(existing.Discount)
		if err := tx.Model(&existing).Update("total", total).Error; err != nil {
			return err
		}
		existing.Total = total
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &existing, nil
}

func (s *Store) UpdateEstimateStatus(id string, status models.EstimateStatus) error {
	switch status {
	case models.EstimateStatusPending, models.EstimateStatusSent,
		models.EstimateStatusAccepted, models.EstimateStatusRejected:
	default:
		return fmt.Errorf("store: invalid estimate status %q", status)
	}
	res := s.db.Model(&models.Estimate{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) DeleteEstimate(id string) (bool, error) {
	res := s.db.Delete(&models.Estimate{}, "id = ?", id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
