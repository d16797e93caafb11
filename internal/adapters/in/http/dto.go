package http

import (
	"time"

	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/complaint"
	"fooddelivery/internal/core/domain/model/food"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/model/user"
	"fooddelivery/internal/core/ports"
)

// Money travels as a decimal string such as "6.99".

type NewFoodItem struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Price       string         `json:"price"`
	Category    string         `json:"category"`
	Restaurant  string         `json:"restaurant"`
	Variations  []NewVariation `json:"variations"`
}

type FoodEdit struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Category    string         `json:"category"`
	Variations  []NewVariation `json:"variations"`
}

type NewVariation struct {
	Name  string `json:"name"`
	Delta string `json:"delta"`
}

type StockUpdate struct {
	InStock bool `json:"in_stock"`
}

type PriceUpdate struct {
	Price string `json:"price"`
}

type OpenUpdate struct {
	Open bool `json:"open"`
}

type NewCartLine struct {
	FoodID    string `json:"food_id"`
	Variation string `json:"variation"`
	Quantity  int    `json:"quantity"`
}

type NewOrder struct {
	Note    string `json:"note"`
	Payment string `json:"payment"`
}

type StatusUpdate struct {
	Status string `json:"status"`
}

type NewMessage struct {
	Text string `json:"text"`
}

type NewRating struct {
	Foods          map[string]FoodRating `json:"foods"`
	ShipperRating  *int                  `json:"shipper_rating"`
	ShipperComment string                `json:"shipper_comment"`
}

type FoodRating struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

type NewComplaint struct {
	Message string `json:"message"`
}

type NewUser struct {
	Username    string `json:"username"`
	Role        string `json:"role"`
	Address     string `json:"address"`
	Phone       string `json:"phone"`
	DisplayName string `json:"display_name"`
}

type UserEdit struct {
	Role        string `json:"role"`
	Address     string `json:"address"`
	Phone       string `json:"phone"`
	DisplayName string `json:"display_name"`
}

type ProfileUpdate struct {
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

type Variation struct {
	Name      string `json:"name"`
	Delta     string `json:"delta"`
	UnitPrice string `json:"unit_price"`
}

type Food struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Price       string      `json:"price"`
	Category    string      `json:"category"`
	Restaurant  string      `json:"restaurant"`
	InStock     bool        `json:"in_stock"`
	Average     float64     `json:"average"`
	RatingCount int         `json:"rating_count"`
	Variations  []Variation `json:"variations"`
}

type CartLine struct {
	FoodID    string `json:"food_id"`
	Name      string `json:"name"`
	Variation string `json:"variation,omitempty"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unit_price"`
	LineTotal string `json:"line_total"`
	Available bool   `json:"available"`
}

type Cart struct {
	Owner string     `json:"owner"`
	Lines []CartLine `json:"lines"`
	Total string     `json:"total"`
	Empty bool       `json:"empty"`
}

type OrderSummary struct {
	ID        string    `json:"id"`
	ShortID   string    `json:"short_id,omitempty"`
	Customer  string    `json:"customer"`
	Total     string    `json:"total"`
	Status    string    `json:"status"`
	Shipper   string    `json:"shipper,omitempty"`
	Complaint bool      `json:"complaint"`
	CreatedAt time.Time `json:"created_at"`
	Line      string    `json:"line"`
}

type OrderItem struct {
	FoodID     string `json:"food_id"`
	Name       string `json:"name"`
	Restaurant string `json:"restaurant"`
	Variation  string `json:"variation,omitempty"`
	Quantity   int    `json:"quantity"`
	UnitPrice  string `json:"unit_price"`
	LineTotal  string `json:"line_total"`
}

type OrderDetails struct {
	OrderSummary

	Address          string      `json:"address"`
	Phone            string      `json:"phone"`
	Note             string      `json:"note,omitempty"`
	Payment          string      `json:"payment"`
	PaymentReference string      `json:"payment_reference,omitempty"`
	ShipperName      string      `json:"shipper_name,omitempty"`
	ComplaintText    string      `json:"complaint_text,omitempty"`
	Rated            bool        `json:"rated"`
	Items            []OrderItem `json:"items"`
	Text             string      `json:"text"`
}

type Message struct {
	Sender string    `json:"sender"`
	Text   string    `json:"text"`
	SentAt time.Time `json:"sent_at"`
}

type Reviews struct {
	Subject  string   `json:"subject"`
	Average  float64  `json:"average"`
	Count    int      `json:"count"`
	Ratings  []int    `json:"ratings"`
	Comments []string `json:"comments"`
}

type Complaint struct {
	ID        string    `json:"id"`
	Author    string    `json:"author"`
	Role      string    `json:"role"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	Line      string    `json:"line,omitempty"`
}

type OrderComplaint struct {
	Order     OrderSummary `json:"order"`
	Complaint string       `json:"complaint"`
}

type Complaints struct {
	Complaints []Complaint      `json:"complaints"`
	Orders     []OrderComplaint `json:"orders"`
}

type User struct {
	Username    string `json:"username"`
	Role        string `json:"role"`
	Address     string `json:"address"`
	Phone       string `json:"phone"`
	DisplayName string `json:"display_name,omitempty"`
}

type Activity struct {
	At   time.Time `json:"at"`
	Text string    `json:"text"`
}

func toFood(f queries.FoodResponse) Food {
	variations := make([]Variation, 0, len(f.Variations))
	for _, v := range f.Variations {
		variations = append(variations, Variation{
			Name:      v.Name,
			Delta:     v.Delta.String(),
			UnitPrice: v.UnitPrice.String(),
		})
	}
	return Food{
		ID:          f.ID.String(),
		Name:        f.Name,
		Description: f.Description,
		Price:       f.Price.String(),
		Category:    f.Category,
		Restaurant:  f.Restaurant,
		InStock:     f.InStock,
		Average:     f.Average,
		RatingCount: f.RatingCount,
		Variations:  variations,
	}
}

// fromFoodItem renders a freshly created item the way the listing does.
func fromFoodItem(f *food.FoodItem) Food {
	variations := make([]Variation, 0, len(f.Variations()))
	for _, v := range f.Variations() {
		variations = append(variations, Variation{
			Name:      v.Name,
			Delta:     v.Delta.String(),
			UnitPrice: f.Price().Add(v.Delta).String(),
		})
	}
	return Food{
		ID:          f.ID().String(),
		Name:        f.Name(),
		Description: f.Description(),
		Price:       f.Price().String(),
		Category:    f.Category(),
		Restaurant:  f.Restaurant(),
		InStock:     f.InStock(),
		Average:     f.Average(),
		RatingCount: f.RatingCount(),
		Variations:  variations,
	}
}

func toCart(c queries.CartResponse) Cart {
	lines := make([]CartLine, 0, len(c.Lines))
	for _, l := range c.Lines {
		lines = append(lines, CartLine{
			FoodID:    l.FoodID.String(),
			Name:      l.Name,
			Variation: l.Variation,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice.String(),
			LineTotal: l.LineTotal.String(),
			Available: l.Available,
		})
	}
	return Cart{Owner: c.Owner, Lines: lines, Total: c.Total.String(), Empty: c.IsEmpty}
}

func toOrderSummary(o queries.OrderSummaryResponse) OrderSummary {
	return OrderSummary{
		ID:        o.ID.String(),
		ShortID:   o.ShortID,
		Customer:  o.Customer,
		Total:     o.Total.String(),
		Status:    o.Status,
		Shipper:   o.Shipper,
		Complaint: o.Complaint,
		CreatedAt: o.CreatedAt,
		Line:      o.Line,
	}
}

// fromOrder renders an order returned by a command. Short ids depend on the
// other live orders, so they are only filled in by the listing queries.
func fromOrder(o *order.Order) OrderSummary {
	return OrderSummary{
		ID:        o.ID().String(),
		Customer:  o.Customer(),
		Total:     o.Total().String(),
		Status:    o.Status().String(),
		Shipper:   o.Shipper(),
		Complaint: o.HasComplaint(),
		CreatedAt: o.CreatedAt(),
	}
}

func toOrderDetails(d queries.OrderDetailsResponse) OrderDetails {
	items := make([]OrderItem, 0, len(d.Items))
	for _, item := range d.Items {
		items = append(items, OrderItem{
			FoodID:     item.FoodID.String(),
			Name:       item.Name,
			Restaurant: item.Restaurant,
			Variation:  item.Variation,
			Quantity:   item.Quantity,
			UnitPrice:  item.UnitPrice.String(),
			LineTotal:  item.LineTotal.String(),
		})
	}
	return OrderDetails{
		OrderSummary:     toOrderSummary(d.OrderSummaryResponse),
		Address:          d.Address,
		Phone:            d.Phone,
		Note:             d.Note,
		Payment:          d.Payment,
		PaymentReference: d.PaymentReference,
		ShipperName:      d.ShipperName,
		ComplaintText:    d.ComplaintText,
		Rated:            d.Rated,
		Items:            items,
		Text:             d.Text,
	}
}

func toMessages(messages []queries.MessageResponse) []Message {
	out := make([]Message, 0, len(messages))
	for _, m := range messages {
		out = append(out, Message{Sender: m.Sender, Text: m.Text, SentAt: m.SentAt})
	}
	return out
}

func toReviews(r queries.ReviewsResponse) Reviews {
	ratings := r.Ratings
	if ratings == nil {
		ratings = []int{}
	}
	comments := r.Comments
	if comments == nil {
		comments = []string{}
	}
	return Reviews{Subject: r.Subject, Average: r.Average, Count: r.Count, Ratings: ratings, Comments: comments}
}

func toComplaints(r queries.ComplaintsResponse) Complaints {
	out := Complaints{
		Complaints: make([]Complaint, 0, len(r.Complaints)),
		Orders:     make([]OrderComplaint, 0, len(r.Orders)),
	}
	for _, c := range r.Complaints {
		out.Complaints = append(out.Complaints, Complaint{
			ID:        c.ID.String(),
			Author:    c.Author,
			Role:      c.Role,
			Message:   c.Message,
			Status:    c.Status,
			CreatedAt: c.CreatedAt,
			Line:      c.Line,
		})
	}
	for _, o := range r.Orders {
		out.Orders = append(out.Orders, OrderComplaint{Order: toOrderSummary(o.Order), Complaint: o.Complaint})
	}
	return out
}

func fromComplaint(c *complaint.Complaint) Complaint {
	return Complaint{
		ID:        c.ID().String(),
		Author:    c.Author(),
		Role:      c.Role().String(),
		Message:   c.Message(),
		Status:    c.Status().String(),
		CreatedAt: c.CreatedAt(),
	}
}

func fromUser(u *user.User) User {
	return User{
		Username:    u.Username(),
		Role:        u.Role().String(),
		Address:     u.Address(),
		Phone:       u.Phone(),
		DisplayName: u.DisplayName(),
	}
}

func toActivity(entries []ports.ActivityEntry) []Activity {
	out := make([]Activity, 0, len(entries))
	for _, e := range entries {
		out = append(out, Activity{At: e.At, Text: e.Text})
	}
	return out
}
