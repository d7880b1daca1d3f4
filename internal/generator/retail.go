package generator

import (
	"fmt"

	"github.com/Lumos-Labs-HQ/practicedb/internal/choice"
	"github.com/shopspring/decimal"
)

func (g *Generator) products() []Product {
	var products []Product
	var id int64
	for _, entry := range productCatalog {
		for _, name := range entry.names {
			id++
			price := choice.Uniform(g.rand, g.cfg.Pools.Prices)
			products = append(products, Product{
				ID:          id,
				Name:        name,
				CategoryID:  entry.categoryID,
				Price:       price,
				Cost:        price.Mul(g.cfg.CostRatio).Round(2),
				WeightKg:    g.money(0.1, 5.0),
				Dimensions:  fmt.Sprintf("%dx%dx%d cm", g.intBetween(10, 50), g.intBetween(10, 50), g.intBetween(5, 20)),
				CreatedDate: g.dateBetween(g.yearsAgo(2), g.today),
				IsActive:    true,
			})
		}
	}
	return products
}

func (g *Generator) customers() []Customer {
	pools := g.cfg.Pools
	customers := make([]Customer, g.cfg.Counts.Customers)
	for i := range customers {
		id := int64(i + 1)
		first, last := g.provider.FirstName(), g.provider.LastName()

		vip := g.chance(g.cfg.VIPRate)
		spent := g.money(0, 1000)
		if vip {
			spent = g.money(0, 5000)
		}

		customers[i] = Customer{
			ID:               id,
			FirstName:        first,
			LastName:         last,
			Email:            emailLocal(first, last, id) + "@email.com",
			Phone:            g.provider.Phone(),
			DateOfBirth:      g.daysAgo(18*365, 80*365),
			RegistrationDate: g.daysAgo(30, 3*365),
			City:             g.pick(pools.Cities),
			State:            g.pick(pools.States),
			Country:          "USA",
			Segment:          g.pick(pools.Segments),
			IsVIP:            vip,
			TotalSpent:       spent,
		}
	}
	return customers
}

// orders derives tax, shipping and total from the subtotal. None of them is
// drawn independently.
func (g *Generator) orders(customerIDs, warehouseIDs []int64) ([]Order, error) {
	orders := make([]Order, g.cfg.Counts.Orders)
	for i := range orders {
		subtotal := g.money(25, 1500)
		tax := subtotal.Mul(g.cfg.TaxRate).Round(2)
		shipping := decimal.Zero
		if subtotal.LessThan(g.cfg.FreeShippingThreshold) {
			shipping = g.money(0, g.cfg.MaxShippingCost)
		}

		shippingAddress := g.provider.Address()
		billingAddress := shippingAddress
		if !g.chance(g.cfg.BillingSameRate) {
			billingAddress = g.provider.Address()
		}

		customerID, err := g.pickID(customerIDs)
		if err != nil {
			return nil, fmt.Errorf("order %d customer: %w", i+1, err)
		}
		warehouseID, err := g.pickID(warehouseIDs)
		if err != nil {
			return nil, fmt.Errorf("order %d warehouse: %w", i+1, err)
		}

		orders[i] = Order{
			ID:              int64(i + 1),
			CustomerID:      customerID,
			OrderDate:       g.daysAgo(1, 365),
			Status:          g.cfg.Pools.OrderStatuses.Pick(g.rand),
			ShippingAddress: shippingAddress,
			BillingAddress:  billingAddress,
			PaymentMethod:   g.pick(g.cfg.Pools.PaymentMethods),
			Subtotal:        subtotal,
			TaxAmount:       tax,
			ShippingCost:    shipping,
			TotalAmount:     subtotal.Add(tax).Add(shipping),
			WarehouseID:     warehouseID,
		}
	}
	return orders, nil
}

// orderItems copies each unit price from the product price map.
func (g *Generator) orderItems(orders []Order, products []int64, prices map[int64]decimal.Decimal) ([]OrderItem, error) {
	counts := g.cfg.Counts
	items := make([]OrderItem, 0, len(orders)*(counts.ItemsPerOrderMin+counts.ItemsPerOrderMax)/2)
	for _, order := range orders {
		n := g.intBetween(counts.ItemsPerOrderMin, counts.ItemsPerOrderMax)
		for j := 0; j < n; j++ {
			productID, err := g.pickID(products)
			if err != nil {
				return nil, fmt.Errorf("order %d: %w", order.ID, err)
			}
			price, ok := prices[productID]
			if !ok {
				return nil, missing("products", productID)
			}

			qty := g.intBetween(1, 3)
			items = append(items, OrderItem{
				ID:         int64(len(items) + 1),
				OrderID:    order.ID,
				ProductID:  productID,
				Quantity:   qty,
				UnitPrice:  price,
				TotalPrice: price.Mul(decimal.NewFromInt(int64(qty))),
			})
		}
	}
	return items, nil
}
