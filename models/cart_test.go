package models

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
)

var decimalEqual = cmp.Comparer(func(a, b decimal.Decimal) bool { return a.Equal(b) })

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestCartAddMergesByProductID(t *testing.T) {
	var cart Cart
	cart = cart.Add(1, "Soda", price("5.00"))
	cart = cart.Add(1, "Soda", price("5.00"))
	cart = cart.Add(2, "Chips", price("3.50"))

	want := Cart{
		{ProductID: 1, ProductName: "Soda", UnitPrice: price("5.00"), Quantity: 2},
		{ProductID: 2, ProductName: "Chips", UnitPrice: price("3.50"), Quantity: 1},
	}
	if diff := cmp.Diff(want, cart, decimalEqual); diff != "" {
		t.Fatalf("cart mismatch (-want +got):\n%s", diff)
	}
	if got := cart.Total(); !got.Equal(price("13.50")) {
		t.Fatalf("total = %s, want 13.50", got)
	}
}

func TestCartAddKeepsCapturedNameAndPrice(t *testing.T) {
	cart := Cart{}.Add(1, "Soda", price("5.00")).Add(1, "Soda Zero", price("9.99"))

	line, _ := cart.Find(1)
	if line.ProductName != "Soda" || !line.UnitPrice.Equal(price("5.00")) || line.Quantity != 2 {
		t.Fatalf("line = %+v", line)
	}
}

func TestCartAddCountsPerID(t *testing.T) {
	ids := []int{3, 1, 3, 2, 3, 1}
	var cart Cart
	for _, id := range ids {
		cart = cart.Add(id, "p", price("1"))
	}

	counts := map[int]int{}
	for _, id := range ids {
		counts[id]++
	}
	if len(cart) != len(counts) {
		t.Fatalf("lines = %d, want %d", len(cart), len(counts))
	}
	for _, line := range cart {
		if line.Quantity != counts[line.ProductID] {
			t.Errorf("product %d quantity = %d, want %d", line.ProductID, line.Quantity, counts[line.ProductID])
		}
	}
}

func TestCartMethodsDoNotMutateReceiver(t *testing.T) {
	orig := Cart{{ProductID: 1, ProductName: "Soda", UnitPrice: price("5"), Quantity: 1}}

	_ = orig.Add(1, "Soda", price("5"))
	_, _ = orig.ChangeQuantity(1, 4)
	_ = orig.Remove(1)

	if len(orig) != 1 || orig[0].Quantity != 1 {
		t.Fatalf("receiver changed: %+v", orig)
	}
}

func TestCartChangeQuantity(t *testing.T) {
	cart := Cart{}.Add(1, "Soda", price("5")).Add(1, "Soda", price("5")).Add(2, "Chips", price("3.50"))

	t.Run("increment", func(t *testing.T) {
		next, ok := cart.ChangeQuantity(2, 3)
		if !ok {
			t.Fatal("expected product 2 to be found")
		}
		if line, _ := next.Find(2); line.Quantity != 4 {
			t.Fatalf("quantity = %d, want 4", line.Quantity)
		}
	})

	t.Run("to zero removes", func(t *testing.T) {
		next, ok := cart.ChangeQuantity(1, -2)
		if !ok {
			t.Fatal("expected product 1 to be found")
		}
		if _, found := next.Find(1); found {
			t.Fatal("line 1 should be gone")
		}
		if !next.Total().Equal(price("3.50")) {
			t.Fatalf("total = %s, want 3.50", next.Total())
		}
	})

	t.Run("below zero removes", func(t *testing.T) {
		next, _ := cart.ChangeQuantity(1, -10)
		for _, line := range next {
			if line.Quantity <= 0 {
				t.Fatalf("non-positive line left: %+v", line)
			}
		}
		if len(next) != 1 {
			t.Fatalf("lines = %d, want 1", len(next))
		}
	})

	t.Run("unknown id", func(t *testing.T) {
		next, ok := cart.ChangeQuantity(99, 1)
		if ok {
			t.Fatal("unknown id reported as found")
		}
		if diff := cmp.Diff(cart, next, decimalEqual); diff != "" {
			t.Fatalf("cart changed:\n%s", diff)
		}
	})
}

func TestCartRemoveIsIdempotent(t *testing.T) {
	cart := Cart{}.Add(1, "Soda", price("5")).Add(2, "Chips", price("3.50"))

	once := cart.Remove(1)
	twice := once.Remove(1)
	if diff := cmp.Diff(once, twice, decimalEqual); diff != "" {
		t.Fatalf("second remove changed cart:\n%s", diff)
	}
	if len(twice) != 1 || twice[0].ProductID != 2 {
		t.Fatalf("cart = %+v", twice)
	}
}

func TestEncodeCartWireFormat(t *testing.T) {
	data, err := EncodeCart(Cart{{ProductID: 1, ProductName: "Soda", UnitPrice: price("5.5"), Quantity: 2}})
	if err != nil {
		t.Fatal(err)
	}

	var raw []map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatal(err)
	}
	want := []map[string]interface{}{{"id": 1.0, "nome": "Soda", "preco": 5.5, "quantidade": 2.0}}
	if diff := cmp.Diff(want, raw); diff != "" {
		t.Fatalf("wire format (-want +got):\n%s", diff)
	}

	empty, _ := EncodeCart(nil)
	if string(empty) != "[]" {
		t.Fatalf("empty cart encodes as %s", empty)
	}
}

func TestDecodeCartRecovers(t *testing.T) {
	tests := []struct {
		name  string
		data  string
		lines int
	}{
		{"absent", "", 0},
		{"garbage", "{not json", 0},
		{"object instead of array", `{"id": 1}`, 0},
		{"null", "null", 0},
		{"valid", `[{"id":1,"nome":"Soda","preco":5,"quantidade":2}]`, 1},
		{"drops non-positive quantities", `[{"id":1,"nome":"a","preco":1,"quantidade":0},{"id":2,"nome":"b","preco":1,"quantidade":-3},{"id":3,"nome":"c","preco":"2.50","quantidade":1}]`, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cart := DecodeCart([]byte(tt.data))
			if cart == nil {
				t.Fatal("DecodeCart returned nil")
			}
			if len(cart) != tt.lines {
				t.Fatalf("lines = %d, want %d", len(cart), tt.lines)
			}
		})
	}
}

func TestDecodeCartRoundTripKeepsOrder(t *testing.T) {
	cart := Cart{}.Add(5, "E", price("1")).Add(2, "B", price("2")).Add(9, "I", price("0.10"))
	data, _ := EncodeCart(cart)
	got := DecodeCart(data)

	var ids []string
	for _, line := range got {
		ids = append(ids, line.ProductName)
	}
	if strings.Join(ids, ",") != "E,B,I" {
		t.Fatalf("order = %v", ids)
	}
}

func TestDecodeCartMergesRepeatedIDs(t *testing.T) {
	data := `[{"id":1,"nome":"Soda","preco":5,"quantidade":2},{"id":2,"nome":"Chips","preco":3.5,"quantidade":1},{"id":1,"nome":"Soda Zero","preco":9,"quantidade":3}]`
	cart := DecodeCart([]byte(data))

	want := Cart{
		{ProductID: 1, ProductName: "Soda", UnitPrice: price("5"), Quantity: 5},
		{ProductID: 2, ProductName: "Chips", UnitPrice: price("3.5"), Quantity: 1},
	}
	if diff := cmp.Diff(want, cart, decimalEqual); diff != "" {
		t.Fatalf("cart mismatch (-want +got):\n%s", diff)
	}

	// One Remove clears the product, one Add bumps the merged line.
	if got := cart.Remove(1); len(got) != 1 {
		t.Fatalf("after Remove = %+v", got)
	}
	if line, _ := cart.Add(1, "Soda", price("5")).Find(1); line.Quantity != 6 {
		t.Fatalf("after Add quantity = %d, want 6", line.Quantity)
	}
}
