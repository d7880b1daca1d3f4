package generator

import "fmt"

func (g *Generator) movements(products, warehouseIDs []int64) ([]InventoryMovement, error) {
	moves := make([]InventoryMovement, g.cfg.Counts.Movements)
	for i := range moves {
		id := int64(i + 1)
		product, err := g.pickID(products)
		if err != nil {
			return nil, fmt.Errorf("movement %d: %w", id, err)
		}
		warehouse, err := g.pickID(warehouseIDs)
		if err != nil {
			return nil, fmt.Errorf("movement %d: %w", id, err)
		}

		moves[i] = InventoryMovement{
			ID:              id,
			ProductID:       product,
			WarehouseID:     warehouse,
			MovementType:    g.pick(g.cfg.Pools.MovementTypes),
			Quantity:        g.intBetween(1, 100),
			MovementDate:    g.daysAgo(0, 182),
			ReferenceNumber: fmt.Sprintf("MOV%05d", g.intBetween(10000, 99999)),
		}
	}
	return moves, nil
}
