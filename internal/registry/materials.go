package registry

import "brewing-items/internal/item"

// materialNames covers the vanilla materials brewing templates use. Servers
// with custom materials build their own table with NewStatic.
var materialNames = []item.Material{
	// consumables
	"APPLE", "GOLDEN_APPLE", "ENCHANTED_GOLDEN_APPLE", "BREAD", "CAKE", "COOKIE",
	"PUMPKIN_PIE", "MUSHROOM_STEW", "RABBIT_STEW", "BEETROOT_SOUP", "SUSPICIOUS_STEW",
	"BAKED_POTATO", "POTATO", "POISONOUS_POTATO", "CARROT", "GOLDEN_CARROT", "BEETROOT",
	"MELON_SLICE", "GLISTERING_MELON_SLICE", "SWEET_BERRIES", "GLOW_BERRIES", "CHORUS_FRUIT",
	"DRIED_KELP", "HONEY_BOTTLE", "MILK_BUCKET", "COOKED_BEEF", "COOKED_PORKCHOP",
	"COOKED_CHICKEN", "COOKED_MUTTON", "COOKED_RABBIT", "COOKED_COD", "COOKED_SALMON",
	"BEEF", "PORKCHOP", "CHICKEN", "MUTTON", "RABBIT", "COD", "SALMON", "TROPICAL_FISH",
	"PUFFERFISH", "ROTTEN_FLESH", "SPIDER_EYE",

	// brewing
	"POTION", "SPLASH_POTION", "LINGERING_POTION", "GLASS_BOTTLE", "EXPERIENCE_BOTTLE",
	"DRAGON_BREATH", "BREWING_STAND", "CAULDRON", "BLAZE_POWDER", "BLAZE_ROD",
	"NETHER_WART", "FERMENTED_SPIDER_EYE", "MAGMA_CREAM", "GHAST_TEAR", "RABBIT_FOOT",
	"PHANTOM_MEMBRANE", "TURTLE_HELMET", "GUNPOWDER", "REDSTONE", "GLOWSTONE_DUST",
	"SUGAR", "SUGAR_CANE", "HONEYCOMB", "HONEY_BLOCK", "WHEAT", "WHEAT_SEEDS",
	"PUMPKIN", "MELON", "COCOA_BEANS", "KELP", "SEAGRASS", "BOWL", "BUCKET", "WATER_BUCKET",

	// misc
	"PAPER", "BOOK", "WRITTEN_BOOK", "ENCHANTED_BOOK", "NAME_TAG", "STICK", "BONE",
	"BONE_MEAL", "FEATHER", "STRING", "SLIME_BALL", "ENDER_PEARL", "ENDER_EYE",
	"NETHER_STAR", "TOTEM_OF_UNDYING", "HEART_OF_THE_SEA", "NAUTILUS_SHELL", "AMETHYST_SHARD",
	"EMERALD", "DIAMOND", "GOLD_INGOT", "GOLD_NUGGET", "IRON_INGOT", "IRON_NUGGET",
	"COAL", "CHARCOAL", "FLINT", "CLAY_BALL", "PRISMARINE_CRYSTALS", "PRISMARINE_SHARD",
	"DIAMOND_SWORD", "IRON_SWORD", "GOLDEN_SWORD", "WOODEN_SWORD", "STONE_SWORD",
}

// Materials returns the built-in material table.
func Materials() *Static[item.Material] {
	return NewStatic("material", materialNames...)
}
