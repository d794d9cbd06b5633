package registry

import "brewing-items/internal/item"

var effectNames = []item.EffectType{
	"SPEED",
	"SLOW",
	"FAST_DIGGING",
	"SLOW_DIGGING",
	"INCREASE_DAMAGE",
	"HEAL",
	"HARM",
	"JUMP",
	"CONFUSION",
	"REGENERATION",
	"DAMAGE_RESISTANCE",
	"FIRE_RESISTANCE",
	"WATER_BREATHING",
	"INVISIBILITY",
	"BLINDNESS",
	"NIGHT_VISION",
	"HUNGER",
	"WEAKNESS",
	"POISON",
	"WITHER",
	"HEALTH_BOOST",
	"ABSORPTION",
	"SATURATION",
	"GLOWING",
	"LEVITATION",
	"LUCK",
	"UNLUCK",
	"SLOW_FALLING",
	"CONDUIT_POWER",
	"DOLPHINS_GRACE",
	"BAD_OMEN",
	"HERO_OF_THE_VILLAGE",
	"DARKNESS",
}

// Effects returns the built-in status effect table.
func Effects() *Static[item.EffectType] {
	return NewStatic("effect", effectNames...)
}
