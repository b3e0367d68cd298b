package basics

import "math"

// FixedPointShift is the shift corresponding to the 1024 fixed-point
// denominator used throughout the engine: multiply, accumulate, then
// recover the natural scale with >>FixedPointShift.
const FixedPointShift = 10

// FixedPointScale is the nominal fixed-point unit (1024).
const FixedPointScale = 1 << FixedPointShift

// AlphaTable maps an 8-bit opacity value to a fixed-point scale in
// [0,1024]. It is monotonic, AlphaTable[0] == 0, AlphaTable[255] == 1024,
// and is approximately linear with a kink between index 63 (252) and
// index 64 (257) — a faithful artifact of the table this engine was
// modeled on, not a derived formula.
var AlphaTable = [256]int{
	0, 4, 8, 12, 16, 20, 24, 28, 32, 36, 40, 44, 48, 52, 56, 60,
	64, 68, 72, 76, 80, 84, 88, 92, 96, 100, 104, 108, 112, 116, 120, 124,
	128, 132, 136, 140, 144, 148, 152, 156, 160, 164, 168, 172, 176, 180, 184, 188,
	192, 196, 200, 204, 208, 212, 216, 220, 224, 228, 232, 236, 240, 244, 248, 252,
	257, 261, 265, 269, 273, 277, 281, 285, 289, 293, 297, 301, 305, 309, 313, 317,
	321, 325, 329, 333, 337, 341, 345, 349, 353, 357, 361, 365, 369, 373, 377, 381,
	385, 389, 393, 397, 401, 405, 409, 413, 417, 421, 425, 429, 433, 437, 441, 445,
	449, 453, 457, 461, 465, 469, 473, 477, 481, 485, 489, 493, 497, 501, 505, 509,
	514, 518, 522, 526, 530, 534, 538, 542, 546, 550, 554, 558, 562, 566, 570, 574,
	578, 582, 586, 590, 594, 598, 602, 606, 610, 614, 618, 622, 626, 630, 634, 638,
	642, 646, 650, 654, 658, 662, 666, 670, 674, 678, 682, 686, 690, 694, 698, 702,
	706, 710, 714, 718, 722, 726, 730, 734, 738, 742, 746, 750, 754, 758, 762, 766,
	771, 775, 779, 783, 787, 791, 795, 799, 803, 807, 811, 815, 819, 823, 827, 831,
	835, 839, 843, 847, 851, 855, 859, 863, 867, 871, 875, 879, 883, 887, 891, 895,
	899, 903, 907, 911, 915, 919, 923, 927, 931, 935, 939, 943, 947, 951, 955, 959,
	963, 967, 971, 975, 979, 983, 987, 991, 995, 999, 1003, 1007, 1011, 1015, 1019, 1024,
}

// BicubicTableSize is the number of entries in a bicubic weight table: one
// per integer subpixel index d in [0,200].
const BicubicTableSize = 201

// BicubicTable is a lookup of round(1000 * f(d/100)) for the Mitchell-Keys
// cubic kernel, indexed by integer subpixel position d in [0,200].
type BicubicTable [BicubicTableSize]int

// NewBicubicTable builds a bicubic weight table for parameter a.
func NewBicubicTable(a float64) BicubicTable {
	var table BicubicTable
	for d := 0; d < BicubicTableSize; d++ {
		fd := float64(d) / 100.0
		switch {
		case d < 100:
			table[d] = int(math.Round(((a+2.0)*fd*fd*fd - (a+3.0)*fd*fd + 1.0) * 1000.0))
		case d < 200:
			table[d] = int(math.Round((a*fd*fd*fd - 5*a*fd*fd + 8*a*fd - 4*a) * 1000.0))
		default:
			table[d] = 0
		}
	}
	return table
}

// DefaultBicubicTable is the process-wide bicubic table for a = -1, the
// parameter every resize/sampling operator uses unless a caller supplies
// its own table.
var DefaultBicubicTable = NewBicubicTable(-1.0)
