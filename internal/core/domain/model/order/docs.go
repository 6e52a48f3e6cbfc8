// Package order models the delivery orders fed to the tour dispatch engine.
//
// Orders come from the ERP through ports.OrderSource. The adapter hands raw
// fields to NewOrder, which trims text, drops blank address lines and keeps
// the normalized delivery date. Everything downstream works on this single
// schema instead of probing loosely typed ERP rows.
package order
