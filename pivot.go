package rojo

import "github.com/memothelemo/rojo/dom"

// Classes that inherit from Model in the upstream class hierarchy. Instances
// of these classes do not round-trip their pivot through the place file
// format unless NeedsPivotMigration is written out explicitly (upstream
// issues rojo#628 and rbx-dom#385). The class list is frozen; the last
// Model descendant was added upstream in 2020.
var pivotMigrationClasses = map[string]struct{}{
	"Model":      {},
	"Actor":      {},
	"Tool":       {},
	"HopperBin":  {},
	"Flag":       {},
	"WorldModel": {},
	"Workspace":  {},
	"Status":     {},
}

const needsPivotMigration = "NeedsPivotMigration"

// pivotMigrationDefaults returns the properties to inject ahead of the
// snapshot's own: NeedsPivotMigration=false for Model-family classes that do
// not declare it themselves. An explicit value in props always wins.
func pivotMigrationDefaults(class string, props map[string]dom.Variant) map[string]dom.Variant {
	if _, ok := pivotMigrationClasses[class]; !ok {
		return nil
	}
	if _, ok := props[needsPivotMigration]; ok {
		return nil
	}
	return map[string]dom.Variant{needsPivotMigration: false}
}
