package models

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

func init() {
	// preco and total travel as JSON numbers, not strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// CartLine is one product in the cart. Name and price are captured when the
// product is added and never refreshed.
type CartLine struct {
	ProductID   int             `json:"id" binding:"required"`
	ProductName string          `json:"nome"`
	UnitPrice   decimal.Decimal `json:"preco"`
	Quantity    int             `json:"quantidade" binding:"gte=1"`
}

func (l CartLine) Total() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Cart is the ordered list of lines of a pending sale. At most one line per
// product id; every quantity is at least 1. Methods return a new Cart and
// leave the receiver untouched.
type Cart []CartLine

func (c Cart) IsEmpty() bool {
	return len(c) == 0
}

func (c Cart) Find(productID int) (CartLine, bool) {
	for _, line := range c {
		if line.ProductID == productID {
			return line, true
		}
	}
	return CartLine{}, false
}

// Add increments the line for productID or appends a new one with quantity 1.
func (c Cart) Add(productID int, productName string, unitPrice decimal.Decimal) Cart {
	next := c.clone()
	for i := range next {
		if next[i].ProductID == productID {
			next[i].Quantity++
			return next
		}
	}
	return append(next, CartLine{
		ProductID:   productID,
		ProductName: productName,
		UnitPrice:   unitPrice,
		Quantity:    1,
	})
}

func (c Cart) Remove(productID int) Cart {
	next := make(Cart, 0, len(c))
	for _, line := range c {
		if line.ProductID != productID {
			next = append(next, line)
		}
	}
	return next
}

// ChangeQuantity adds delta to the line's quantity, dropping the line when the
// result is not positive. It reports false when productID is not in the cart.
func (c Cart) ChangeQuantity(productID, delta int) (Cart, bool) {
	next := c.clone()
	for i := range next {
		if next[i].ProductID != productID {
			continue
		}
		next[i].Quantity += delta
		if next[i].Quantity <= 0 {
			return c.Remove(productID), true
		}
		return next, true
	}
	return c, false
}

func (c Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, line := range c {
		total = total.Add(line.Total())
	}
	return total
}

func (c Cart) clone() Cart {
	next := make(Cart, len(c))
	copy(next, c)
	return next
}

// EncodeCart serializes the cart as a JSON array. An empty cart encodes as [].
func EncodeCart(c Cart) ([]byte, error) {
	if c == nil {
		c = Cart{}
	}
	return json.Marshal(c)
}

// DecodeCart never fails: unreadable data is an empty cart, lines with a
// non-positive quantity are dropped and repeated product ids are merged into
// the first line for that id.
func DecodeCart(data []byte) Cart {
	if len(data) == 0 {
		return Cart{}
	}

	var lines []CartLine
	if err := json.Unmarshal(data, &lines); err != nil {
		return Cart{}
	}

	cart := make(Cart, 0, len(lines))
	index := make(map[int]int, len(lines))
	for _, line := range lines {
		if line.Quantity <= 0 {
			continue
		}
		if i, ok := index[line.ProductID]; ok {
			cart[i].Quantity += line.Quantity
			continue
		}
		index[line.ProductID] = len(cart)
		cart = append(cart, line)
	}
	return cart
}

// CartView is what a renderer draws: every line with its controls and the
// grand total, computed fresh from the stored cart.
type CartView struct {
	Lines        []CartLineView
	Total        decimal.Decimal
	TotalDisplay string
}

type CartLineView struct {
	ProductID    int
	ProductName  string
	UnitPrice    string
	Quantity     int
	LineTotal    string
	Decrement    CartControl
	Increment    CartControl
	RemoveAction CartControl
}

// CartControl describes an action a renderer exposes for a line.
type CartControl struct {
	Label     string
	ProductID int
	Delta     int
	Remove    bool
}

func (v CartView) IsEmpty() bool {
	return len(v.Lines) == 0
}
