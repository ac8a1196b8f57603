package validation

import (
	"time"

	"jewelmart/models"
)

// ProductInput is the insertable shape of a product. Numeric and boolean
// fields coerce from string-encoded JSON.
type ProductInput struct {
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description"`
	Category    string   `json:"category" validate:"required,slug"`
	SubCategory string   `json:"sub_category"`
	Material    string   `json:"material"`
	Gender      string   `json:"gender"`
	Occasion    string   `json:"occasion"`
	PriceINR    Number   `json:"price_inr" validate:"gte=0"`
	PriceBHD    Number   `json:"price_bhd" validate:"gte=0"`
	GrossWeight Number   `json:"gross_weight" validate:"gte=0"`
	NetWeight   Number   `json:"net_weight" validate:"gte=0"`
	Stock       Number   `json:"stock" validate:"gte=0"`
	Images      []string `json:"images"`
	Gemstones   []string `json:"gemstones"`
	IsFeatured  Bool     `json:"is_featured"`
}

func (in *ProductInput) Model() *models.Product {
	return &models.Product{
		Name:        in.Name,
		Description: in.Description,
		Category:    in.Category,
		SubCategory: in.SubCategory,
		Material:    in.Material,
		Gender:      in.Gender,
		Occasion:    in.Occasion,
		PriceINR:    in.PriceINR.Decimal,
		PriceBHD:    in.PriceBHD.Decimal,
		GrossWeight: in.GrossWeight.Decimal,
		NetWeight:   in.NetWeight.Decimal,
		Stock:       in.Stock.Int(),
		Images:      in.Images,
		Gemstones:   in.Gemstones,
		IsFeatured:  bool(in.IsFeatured),
	}
}

// ProductUpdateInput carries a partial product edit: absent fields keep
// their stored values, supplied fields are still range-checked.
type ProductUpdateInput struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Category    string   `json:"category" validate:"omitempty,slug"`
	SubCategory string   `json:"sub_category"`
	Material    string   `json:"material"`
	Gender      string   `json:"gender"`
	Occasion    string   `json:"occasion"`
	PriceINR    Number   `json:"price_inr" validate:"gte=0"`
	PriceBHD    Number   `json:"price_bhd" validate:"gte=0"`
	GrossWeight Number   `json:"gross_weight" validate:"gte=0"`
	NetWeight   Number   `json:"net_weight" validate:"gte=0"`
	Stock       Number   `json:"stock" validate:"gte=0"`
	Images      []string `json:"images"`
	Gemstones   []string `json:"gemstones"`
	IsFeatured  Bool     `json:"is_featured"`
}

func (in *ProductUpdateInput) Model() *models.Product {
	return &models.Product{
		Name:        in.Name,
		Description: in.Description,
		Category:    in.Category,
		SubCategory: in.SubCategory,
		Material:    in.Material,
		Gender:      in.Gender,
		Occasion:    in.Occasion,
		PriceINR:    in.PriceINR.Decimal,
		PriceBHD:    in.PriceBHD.Decimal,
		GrossWeight: in.GrossWeight.Decimal,
		NetWeight:   in.NetWeight.Decimal,
		Stock:       in.Stock.Int(),
		Images:      in.Images,
		Gemstones:   in.Gemstones,
		IsFeatured:  bool(in.IsFeatured),
	}
}

type CategoryInput struct {
	Name         string  `json:"name" validate:"required"`
	Slug         string  `json:"slug" validate:"required,slug"`
	Description  string  `json:"description"`
	Image        string  `json:"image"`
	ParentID     *string `json:"parent_id"`
	DisplayOrder Number  `json:"display_order" validate:"gte=0"`
}

func (in *CategoryInput) Model() *models.Category {
	return &models.Category{
		Name:         in.Name,
		Slug:         in.Slug,
		Description:  in.Description,
		Image:        in.Image,
		ParentID:     in.ParentID,
		DisplayOrder: in.DisplayOrder.Int(),
	}
}

// CategoryUpdateInput is CategoryInput without the presence requirements.
type CategoryUpdateInput struct {
	Name         string  `json:"name"`
	Slug         string  `json:"slug" validate:"omitempty,slug"`
	Description  string  `json:"description"`
	Image        string  `json:"image"`
	ParentID     *string `json:"parent_id"`
	DisplayOrder Number  `json:"display_order" validate:"gte=0"`
}

func (in *CategoryUpdateInput) Model() *models.Category {
	return &models.Category{
		Name:         in.Name,
		Slug:         in.Slug,
		Description:  in.Description,
		Image:        in.Image,
		ParentID:     in.ParentID,
		DisplayOrder: in.DisplayOrder.Int(),
	}
}

type SignupInput struct {
	Name     string `json:"name"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"omitempty,min=7"`
	Password string `json:"password" validate:"required,min=6"`
}

func (in *SignupInput) Model() *models.User {
	return &models.User{
		Name:     in.Name,
		Email:    in.Email,
		Phone:    in.Phone,
		Password: in.Password,
		Role:     models.RoleGuest,
	}
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type OtpRequestInput struct {
	Email string `json:"email" validate:"required,email"`
}

type OtpVerifyInput struct {
	Email string `json:"email" validate:"required,email"`
	Code  string `json:"code" validate:"required,len=6"`
}

type PasswordResetInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type CartItemInput struct {
	SessionID *string `json:"session_id"`
	UserID    *string `json:"user_id"`
	ProductID string  `json:"product_id" validate:"required"`
	Quantity  Number  `json:"quantity" validate:"gte=1"`
}

func (in *CartItemInput) Model() *models.CartItem {
	return &models.CartItem{
		SessionID: in.SessionID,
		UserID:    in.UserID,
		ProductID: in.ProductID,
		Quantity:  in.Quantity.Int(),
	}
}

type LineItemInput struct {
	ProductID   string `json:"product_id" validate:"required"`
	Name        string `json:"name" validate:"required"`
	Quantity    Number `json:"quantity" validate:"gte=1"`
	UnitPrice   Number `json:"unit_price" validate:"gte=0"`
	GrossWeight Number `json:"gross_weight" validate:"gte=0"`
	NetWeight   Number `json:"net_weight" validate:"gte=0"`
	LineTotal   Number `json:"line_total" validate:"gte=0"`
}

func lineItems(in []LineItemInput) []models.LineItem {
	items := make([]models.LineItem, len(in))
	for i, li := range in {
		items[i] = models.LineItem{
			ProductID:   li.ProductID,
			Name:        li.Name,
			Quantity:    li.Quantity.Int(),
			UnitPrice:   li.UnitPrice.Decimal,
			GrossWeight: li.GrossWeight.Decimal,
			NetWeight:   li.NetWeight.Decimal,
			LineTotal:   li.LineTotal.Decimal,
		}
	}
	return items
}

type OrderInput struct {
	UserID          *string         `json:"user_id"`
	CustomerName    string          `json:"customer_name" validate:"required"`
	CustomerEmail   string          `json:"customer_email" validate:"omitempty,email"`
	CustomerPhone   string          `json:"customer_phone"`
	ShippingAddress string          `json:"shipping_address"`
	Currency        string          `json:"currency" validate:"required,oneof=INR BHD"`
	Items           []LineItemInput `json:"items" validate:"required,min=1,dive"`
	Subtotal        Number          `json:"subtotal" validate:"gte=0"`
	MakingCharges   Number          `json:"making_charges" validate:"gte=0"`
	GST             Number          `json:"gst" validate:"gte=0"`
	VAT             Number          `json:"vat" validate:"gte=0"`
	Shipping        Number          `json:"shipping" validate:"gte=0"`
	Discount        Number          `json:"discount" validate:"gte=0"`
}

func (in *OrderInput) Model() *models.Order {
	return &models.Order{
		UserID:          in.UserID,
		CustomerName:    in.CustomerName,
		CustomerEmail:   in.CustomerEmail,
		CustomerPhone:   in.CustomerPhone,
		ShippingAddress: in.ShippingAddress,
		Currency:        in.Currency,
		Items:           lineItems(in.Items),
		Subtotal:        in.Subtotal.Decimal,
		MakingCharges:   in.MakingCharges.Decimal,
		GST:             in.GST.Decimal,
		VAT:             in.VAT.Decimal,
		Shipping:        in.Shipping.Decimal,
		Discount:        in.Discount.Decimal,
	}
}

type BillInput struct {
	CustomerName  string          `json:"customer_name" validate:"required"`
	CustomerPhone string          `json:"customer_phone"`
	Currency      string          `json:"currency" validate:"required,oneof=INR BHD"`
	Items         []LineItemInput `json:"items" validate:"required,min=1,dive"`
	Subtotal      Number          `json:"subtotal" validate:"gte=0"`
	MakingCharges Number          `json:"making_charges" validate:"gte=0"`
	GST           Number          `json:"gst" validate:"gte=0"`
	Discount      Number          `json:"discount" validate:"gte=0"`
	Notes         string          `json:"notes"`
}

func (in *BillInput) Model() *models.Bill {
	return &models.Bill{
		CustomerName:  in.CustomerName,
		CustomerPhone: in.CustomerPhone,
		Currency:      in.Currency,
		Items:         lineItems(in.Items),
		Subtotal:      in.Subtotal.Decimal,
		MakingCharges: in.MakingCharges.Decimal,
		GST:           in.GST.Decimal,
		Discount:      in.Discount.Decimal,
		Notes:         in.Notes,
	}
}

// BillUpdateInput is the partial-update shape of a bill. Monetary components
// are pointers so an explicit zero clears the stored value, while an absent
// field keeps it.
type BillUpdateInput struct {
	CustomerName  string          `json:"customer_name"`
	CustomerPhone string          `json:"customer_phone"`
	Currency      string          `json:"currency" validate:"omitempty,oneof=INR BHD"`
	Items         []LineItemInput `json:"items" validate:"omitempty,dive"`
	Subtotal      *Number         `json:"subtotal" validate:"omitempty,gte=0"`
	MakingCharges *Number         `json:"making_charges" validate:"omitempty,gte=0"`
	GST           *Number         `json:"gst" validate:"omitempty,gte=0"`
	Discount      *Number         `json:"discount" validate:"omitempty,gte=0"`
	Notes         string          `json:"notes"`
}

// Changes returns the supplied fields as a model plus the column list to
// write, so the store updates exactly what the client sent.
func (in *BillUpdateInput) Changes() (*models.Bill, []string) {
	bill := &models.Bill{}
	var cols []string
	if in.CustomerName != "" {
		bill.CustomerName = in.CustomerName
		cols = append(cols, "customer_name")
	}
	if in.CustomerPhone != "" {
		bill.CustomerPhone = in.CustomerPhone
		cols = append(cols, "customer_phone")
	}
	if in.Currency != "" {
		bill.Currency = in.Currency
		cols = append(cols, "currency")
	}
	if in.Items != nil {
		bill.Items = lineItems(in.Items)
		cols = append(cols, "items")
	}
	if in.Subtotal != nil {
		bill.Subtotal = in.Subtotal.Decimal
		cols = append(cols, "subtotal")
	}
	if in.MakingCharges != nil {
		bill.MakingCharges = in.MakingCharges.Decimal
		cols = append(cols, "making_charges")
	}
	if in.GST != nil {
		bill.GST = in.GST.Decimal
		cols = append(cols, "gst")
	}
	if in.Discount != nil {
		bill.Discount = in.Discount.Decimal
		cols = append(cols, "discount")
	}
	if in.Notes != "" {
		bill.Notes = in.Notes
		cols = append(cols, "notes")
	}
	return bill, cols
}

type EstimateInput struct {
	CustomerName  string          `json:"customer_name" validate:"required"`
	CustomerPhone string          `json:"customer_phone"`
	CustomerEmail string          `json:"customer_email" validate:"omitempty,email"`
	Currency      string          `json:"currency" validate:"required,oneof=INR BHD"`
	Items         []LineItemInput `json:"items" validate:"required,min=1,dive"`
	Subtotal      Number          `json:"subtotal" validate:"gte=0"`
	MakingCharges Number          `json:"making_charges" validate:"gte=0"`
	GST           Number          `json:"gst" validate:"gte=0"`
	Discount      Number          `json:"discount" validate:"gte=0"`
	ValidUntil    *time.Time      `json:"valid_until"`
	Notes         string          `json:"notes"`
}

func (in *EstimateInput) Model() *models.Estimate {
	return &models.Estimate{
		CustomerName:  in.CustomerName,
		CustomerPhone: in.CustomerPhone,
		CustomerEmail: in.CustomerEmail,
		Currency:      in.Currency,
		Items:         lineItems(in.Items),
		Subtotal:      in.Subtotal.Decimal,
		MakingCharges: in.MakingCharges.Decimal,
		GST:           in.GST.Decimal,
		Discount:      in.Discount.Decimal,
		ValidUntil:    in.ValidUntil,
		Notes:         in.Notes,
	}
}

// EstimateUpdateInput mirrors BillUpdateInput for quotations. The quotation
// number is not updatable and has no field here.
type EstimateUpdateInput struct {
	CustomerName  string          `json:"customer_name"`
	CustomerPhone string          `json:"customer_phone"`
	CustomerEmail string          `json:"customer_email" validate:"omitempty,email"`
	Currency      string          `json:"currency" validate:"omitempty,oneof=INR BHD"`
	Items         []LineItemInput `json:"items" validate:"omitempty,dive"`
	Subtotal      *Number         `json:"subtotal" validate:"omitempty,gte=0"`
	MakingCharges *Number         `json:"making_charges" validate:"omitempty,gte=0"`
	GST           *Number         `json:"gst" validate:"omitempty,gte=0"`
	Discount      *Number         `json:"discount" validate:"omitempty,gte=0"`
	ValidUntil    *time.Time      `json:"valid_until"`
	Notes         string          `json:"notes"`
}

func (in *EstimateUpdateInput) Changes() (*models.Estimate, []string) {
	estimate := &models.Estimate{}
	var cols []string
	if in.CustomerName != "" {
		estimate.CustomerName = in.CustomerName
		cols = append(cols, "customer_name")
	}
	if in.CustomerPhone != "" {
		estimate.CustomerPhone = in.CustomerPhone
		cols = append(cols, "customer_phone")
	}
	if in.CustomerEmail != "" {
		estimate.CustomerEmail = in.CustomerEmail
		cols = append(cols, "customer_email")
	}
	if in.Currency != "" {
		estimate.Currency = in.Currency
		cols = append(cols, "currency")
	}
	if in.Items != nil {
		estimate.Items = lineItems(in.Items)
		cols = append(cols, "items")
	}
	if in.Subtotal != nil {
		estimate.Subtotal = in.Subtotal.Decimal
		cols = append(cols, "subtotal")
	}
	if in.MakingCharges != nil {
		estimate.MakingCharges = in.MakingCharges.Decimal
		cols = append(cols, "making_charges")
	}
	if in.GST != nil {
		estimate.GST = in.GST.Decimal
		cols = append(cols, "gst")
	}
	if in.Discount != nil {
		estimate.Discount = in.Discount.Decimal
		cols = append(cols, "discount")
	}
	if in.ValidUntil != nil {
		estimate.ValidUntil = in.ValidUntil
		cols = append(cols, "valid_until")
	}
	if in.Notes != "" {
		estimate.Notes = in.Notes
		cols = append(cols, "notes")
	}
	return estimate, cols
}

type HomeSectionInput struct {
	Title        string `json:"title" validate:"required"`
	LayoutType   string `json:"layout_type" validate:"omitempty,oneof=grid carousel banner spotlight"`
	DisplayOrder Number `json:"display_order" validate:"gte=0"`
}

func (in *HomeSectionInput) Model() *models.HomeSection {
	return &models.HomeSection{
		Title:        in.Title,
		LayoutType:   in.LayoutType,
		DisplayOrder: in.DisplayOrder.Int(),
	}
}

// HomeSectionUpdateInput is HomeSectionInput without the presence
// requirement on the title.
type HomeSectionUpdateInput struct {
	Title        string `json:"title"`
	LayoutType   string `json:"layout_type" validate:"omitempty,oneof=grid carousel banner spotlight"`
	DisplayOrder Number `json:"display_order" validate:"gte=0"`
}

func (in *HomeSectionUpdateInput) Model() *models.HomeSection {
	return &models.HomeSection{
		Title:        in.Title,
		LayoutType:   in.LayoutType,
		DisplayOrder: in.DisplayOrder.Int(),
	}
}

type HomeSectionItemInput struct {
	SectionID string `json:"section_id" validate:"required"`
	ProductID string `json:"product_id" validate:"required"`
	Position  Number `json:"position" validate:"gte=0"`
}

func (in *HomeSectionItemInput) Model() *models.HomeSectionItem {
	return &models.HomeSectionItem{
		SectionID: in.SectionID,
		ProductID: in.ProductID,
		Position:  in.Position.Int(),
	}
}
