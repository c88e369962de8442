package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/biring/BomCheck-sub001/internal/bom"
)

func TestQuantityZero(t *testing.T) {
	t.Run("blank item with nonzero qty fails", func(t *testing.T) {
		err := QuantityZero(bom.Row{Item: "", Qty: "2"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "'Qty' = '2' is not correct.")
	})

	t.Run("blank item with zero qty passes", func(t *testing.T) {
		assert.NoError(t, QuantityZero(bom.Row{Item: "", Qty: "0"}))
	})

	t.Run("numbered item with nonzero qty passes", func(t *testing.T) {
		assert.NoError(t, QuantityZero(bom.Row{Item: "1", Qty: "2"}))
	})

	t.Run("unparsable qty is skipped", func(t *testing.T) {
		assert.NoError(t, QuantityZero(bom.Row{Item: "", Qty: ""}))
	})
}

func TestDesignatorRequired(t *testing.T) {
	t.Run("positive qty without designator fails", func(t *testing.T) {
		err := DesignatorRequired(bom.Row{Qty: "1", Designator: ""})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "'Designator' = '' is not correct.")
		assert.Contains(t, err.Error(), "must be listed when 'Qty' is '1'")
	})

	t.Run("positive qty with designator passes", func(t *testing.T) {
		assert.NoError(t, DesignatorRequired(bom.Row{Qty: "1", Designator: "R1"}))
	})

	t.Run("zero qty without designator passes", func(t *testing.T) {
		assert.NoError(t, DesignatorRequired(bom.Row{Qty: "0", Designator: ""}))
	})

	t.Run("float qty is skipped", func(t *testing.T) {
		assert.NoError(t, DesignatorRequired(bom.Row{Qty: "1.0", Designator: ""}))
	})
}

func TestDesignatorCount(t *testing.T) {
	t.Run("count mismatch fails", func(t *testing.T) {
		err := DesignatorCount(bom.Row{Qty: "3", Designator: "C1,C2"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "'Designator' = 'C1,C2' is not correct.")
		assert.Contains(t, err.Error(), "count of 'C1,C2' must match 'Qty' value of '3'")
	})

	t.Run("count match passes", func(t *testing.T) {
		assert.NoError(t, DesignatorCount(bom.Row{Qty: "3", Designator: "C1, C2, C3"}))
	})

	t.Run("zero qty with blank designator passes", func(t *testing.T) {
		assert.NoError(t, DesignatorCount(bom.Row{Qty: "0", Designator: ""}))
	})

	t.Run("unparsable qty is skipped", func(t *testing.T) {
		assert.NoError(t, DesignatorCount(bom.Row{Qty: "", Designator: "C1"}))
	})

	t.Run("blank tokens are not counted", func(t *testing.T) {
		assert.NoError(t, DesignatorCount(bom.Row{Qty: "2", Designator: "C1,,C2,"}))
	})
}

func TestUnitPriceSpecified(t *testing.T) {
	t.Run("positive qty with zero price fails", func(t *testing.T) {
		err := UnitPriceSpecified(bom.Row{Qty: "2", UnitPrice: "0"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "'U/P (RMB W/ VAT)' = '0' is not correct.")
	})

	t.Run("positive qty with negative price fails", func(t *testing.T) {
		assert.Error(t, UnitPriceSpecified(bom.Row{Qty: "2", UnitPrice: "-0.5"}))
	})

	t.Run("positive qty with positive price passes", func(t *testing.T) {
		assert.NoError(t, UnitPriceSpecified(bom.Row{Qty: "2", UnitPrice: "0.5"}))
	})

	t.Run("zero qty with zero price passes", func(t *testing.T) {
		assert.NoError(t, UnitPriceSpecified(bom.Row{Qty: "0", UnitPrice: "0"}))
	})

	t.Run("unparsable price is skipped", func(t *testing.T) {
		assert.NoError(t, UnitPriceSpecified(bom.Row{Qty: "2", UnitPrice: "TBD"}))
	})
}

func TestSubTotalZero(t *testing.T) {
	t.Run("zero qty with nonzero sub-total fails", func(t *testing.T) {
		err := SubTotalZero(bom.Row{Qty: "0", SubTotal: "1.5"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "'Sub-Total (RMB W/ VAT)' = '1.5' is not correct.")
	})

	t.Run("zero qty with zero sub-total passes", func(t *testing.T) {
		assert.NoError(t, SubTotalZero(bom.Row{Qty: "0", SubTotal: "0"}))
	})

	t.Run("nonzero qty is not checked", func(t *testing.T) {
		assert.NoError(t, SubTotalZero(bom.Row{Qty: "2", SubTotal: "1.5"}))
	})

	t.Run("unparsable sub-total is skipped", func(t *testing.T) {
		assert.NoError(t, SubTotalZero(bom.Row{Qty: "0", SubTotal: "x"}))
	})
}

func TestSubTotalCalculation(t *testing.T) {
	t.Run("wrong product fails", func(t *testing.T) {
		err := SubTotalCalculation(bom.Row{Qty: "2", UnitPrice: "0.5", SubTotal: "1.5"})
		require.Error(t, err)
		assert.Contains(t, err.Error(),
			"must be equal to the product of 'Qty' = '2' and 'U/P (RMB W/ VAT)' = '0.5'")
	})

	t.Run("correct product passes", func(t *testing.T) {
		assert.NoError(t, SubTotalCalculation(bom.Row{Qty: "2", UnitPrice: "0.5", SubTotal: "1.0"}))
	})

	t.Run("float noise within tolerance passes", func(t *testing.T) {
		assert.NoError(t, SubTotalCalculation(bom.Row{Qty: "3", UnitPrice: "0.57", SubTotal: "1.71"}))
	})

	t.Run("any unparsable field is skipped", func(t *testing.T) {
		assert.NoError(t, SubTotalCalculation(bom.Row{Qty: "", UnitPrice: "0.5", SubTotal: "1.5"}))
		assert.NoError(t, SubTotalCalculation(bom.Row{Qty: "2", UnitPrice: "", SubTotal: "1.5"}))
		assert.NoError(t, SubTotalCalculation(bom.Row{Qty: "2", UnitPrice: "0.5", SubTotal: ""}))
	})
}

func TestMaterialCostCalculation(t *testing.T) {
	rows := []bom.Row{{SubTotal: "0.5"}, {SubTotal: "0.3"}}

	t.Run("wrong aggregate fails", func(t *testing.T) {
		err := MaterialCostCalculation(rows, bom.Header{MaterialCost: "0.90"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "'Material' = '0.90' is not correct.")
		assert.Contains(t, err.Error(), "aggregate of 'Sub-Total (RMB W/ VAT)'")
	})

	t.Run("correct aggregate passes", func(t *testing.T) {
		assert.NoError(t, MaterialCostCalculation(rows, bom.Header{MaterialCost: "0.80"}))
	})

	t.Run("unparsable rows are left out of the aggregate", func(t *testing.T) {
		mixed := []bom.Row{{SubTotal: "0.5"}, {SubTotal: "n/a"}, {SubTotal: "0.3"}}
		assert.NoError(t, MaterialCostCalculation(mixed, bom.Header{MaterialCost: "0.80"}))
	})

	t.Run("no parseable row skips the check", func(t *testing.T) {
		bad := []bom.Row{{SubTotal: ""}, {SubTotal: "x"}}
		assert.NoError(t, MaterialCostCalculation(bad, bom.Header{MaterialCost: "0.90"}))
	})

	t.Run("unparsable material cost skips the check", func(t *testing.T) {
		assert.NoError(t, MaterialCostCalculation(rows, bom.Header{MaterialCost: ""}))
	})
}

func TestTotalCostCalculation(t *testing.T) {
	t.Run("wrong sum fails", func(t *testing.T) {
		header := bom.Header{MaterialCost: "2.5", OverheadCost: "0.5", TotalCost: "2.9"}
		err := TotalCostCalculation(header)
		require.Error(t, err)
		assert.Contains(t, err.Error(),
			"must be equal to the sum of 'Material' = '2.5' and 'OHP' = '0.5'")
	})

	t.Run("correct sum passes", func(t *testing.T) {
		header := bom.Header{MaterialCost: "2.5", OverheadCost: "0.5", TotalCost: "3.0"}
		assert.NoError(t, TotalCostCalculation(header))
	})

	t.Run("any unparsable field is skipped", func(t *testing.T) {
		assert.NoError(t, TotalCostCalculation(bom.Header{MaterialCost: "", OverheadCost: "0.5", TotalCost: "2.9"}))
		assert.NoError(t, TotalCostCalculation(bom.Header{MaterialCost: "2.5", OverheadCost: "", TotalCost: "2.9"}))
		assert.NoError(t, TotalCostCalculation(bom.Header{MaterialCost: "2.5", OverheadCost: "0.5", TotalCost: ""}))
	})
}

func TestBoard(t *testing.T) {
	board := bom.Board{
		Header: bom.Header{MaterialCost: "1.0", OverheadCost: "0.5", TotalCost: "1.5"},
		Rows: []bom.Row{
			{Item: "1", Qty: "2", Designator: "R1,R2", UnitPrice: "0.25", SubTotal: "0.5"},
			{Item: "2", Qty: "1", Designator: "C1", UnitPrice: "0.5", SubTotal: "0.5"},
		},
	}

	t.Run("clean board has no violations", func(t *testing.T) {
		assert.Empty(t, Board(board))
	})

	t.Run("violations are collected across rows and header", func(t *testing.T) {
		broken := board
		broken.Rows = append([]bom.Row(nil), board.Rows...)
		broken.Rows[1] = bom.Row{Item: "2", Qty: "2", Designator: "C1", UnitPrice: "0.5", SubTotal: "0.5"}
		broken.Header.TotalCost = "9.9"

		errs := Board(broken)
		require.Len(t, errs, 3)

		var v *Violation
		require.ErrorAs(t, errs[0], &v)
		assert.Equal(t, bom.LabelDesignator, v.Field)
	})
}
