package store

import (
	"fmt"
	"strings"
	"time"

	"jewelmart/models"

	"github.com/google/uuid"
)

// CreateOrder persists a checkout. The header total is recomputed as
// subtotal + making charges + gst + vat + shipping - discount; the embedded
// line items are stored verbatim as supplied and are not reconciled against
// the header.
func (s *Store) CreateOrder(order *models.Order) (*models.Order, error) {
	order.Total = order.Subtotal.
		Add(order.MakingCharges).
		Add(order.GST).
		Add(order.VAT).
		Add(order.Shipping).
		Sub(order.Discount)
	if order.OrderNumber == "" {
		order.OrderNumber = newOrderNumber(time.Now())
	}
	if order.PaymentStatus == "" {
		order.PaymentStatus = models.PaymentStatusPending
	}
	if order.OrderStatus == "" {
		order.OrderStatus = models.OrderStatusPending
	}
	if err := s.db.Create(order).Error; err != nil {
		return nil, translate(err)
	}
	return order, nil
}

func newOrderNumber(now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	return fmt.Sprintf("PJ-ORD-%s-%s", now.Format("20060102"), suffix)
}

func (s *Store) GetOrder(id string) (*models.Order, error) {
	var order models.Order
	if err := s.db.First(&order, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &order, nil
}

// GetOrders lists orders newest first, optionally bounded by creation time.
func (s *Store) GetOrders(from, to *time.Time) ([]models.Order, error) {
	q := s.db.Order("created_at DESC")
	if from != nil {
		q = q.Where("created_at >= ?", *from)
	}
	if to != nil {
		q = q.Where("created_at < ?", *to)
	}
	var orders []models.Order
	if err := q.Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *Store) GetOrdersByUser(userID string) ([]models.Order, error) {
	var orders []models.Order
	if err := s.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *Store) UpdateOrderStatus(id string, status models.OrderStatus) error {
	res := s.db.Model(&models.Order{}).Where("id = ?", id).Update("order_status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) UpdatePaymentStatus(id string, status models.PaymentStatus) error {
	res := s.db.Model(&models.Order{}).Where("id = ?", id).Update("payment_status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) DeleteOrder(id string) (bool, error) {
	res := s.db.Delete(&models.Order{}, "id = ?", id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
