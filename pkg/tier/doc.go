// Package tier defines the ordered voltage tiers and their EU/t ceilings.
//
// Each tier supplies at most a fixed amount of power per tick:
//
//	LV   32        IV   8192       UV   524288
//	MV   128       LuV  32768      UHV  2097152
//	HV   512       ZPM  131072
//	EV   2048
//
// ForPower maps a recipe's EU/t to the lowest tier able to run it. The
// number of tiers between that and the tier a player selects is the basis of
// every overclock calculation.
package tier
