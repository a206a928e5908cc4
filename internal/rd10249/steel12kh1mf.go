package rd10249

// Allowable stresses for steel 12Х1МФ (12Kh1MF), РД 10-249-98. The figures
// must stay value-for-value identical to the printed table: they are the
// engineering basis of every verdict this service produces.

var steel12Kh1MFTemps = []float64{
	20, 250, 300, 350, 400, 420, 440, 450, 460, 480, 500, 510,
	520, 530, 540, 550, 560, 570, 580, 590, 600, 610, 620,
}

var steel12Kh1MFDurations = []float64{1e4, 1e5, 2e5, 3e5, 4e5}

// Row per temperature, column per duration, MPa. Zero marks combinations the
// standard does not qualify the steel for.
var steel12Kh1MFCells = [][]float64{
	// 10^4 h, 10^5 h, 2*10^5 h, 3*10^5 h, 4*10^5 h
	{0, 173, 0, 0, 0},         // 20 °C
	{0, 166, 0, 0, 0},         // 250 °C
	{0, 159, 0, 0, 0},         // 300 °C
	{0, 152, 0, 0, 0},         // 350 °C
	{0, 145, 0, 0, 0},         // 400 °C
	{0, 142, 0, 0, 0},         // 420 °C
	{0, 139, 0, 0, 0},         // 440 °C
	{0, 138, 138, 138, 138},   // 450 °C
	{0, 136, 136, 130, 125},   // 460 °C
	{133, 133, 120, 107, 103}, // 480 °C
	{130, 113, 96, 88, 83},    // 500 °C
	{120, 101, 86, 79, 76},    // 510 °C
	{112, 90, 77, 72, 66},     // 520 °C
	{100, 81, 69, 65, 59},     // 530 °C
	{88, 73, 62, 58, 53},      // 540 °C
	{80, 66, 56, 52, 48},      // 550 °C
	{72, 59, 50, 46, 43},      // 560 °C
	{65, 53, 44, 41, 38},      // 570 °C
	{59, 47, 39, 36, 34},      // 580 °C
	{53, 41, 35, 32, 30},      // 590 °C
	{47, 37, 31, 29, 27},      // 600 °C
	{41, 33, 0, 0, 0},         // 610 °C
	{35, 0, 0, 0, 0},          // 620 °C
}

// Steel12Kh1MF builds the 12Х1МФ table. Call it once at startup and share
// the result; the table never changes after construction.
func Steel12Kh1MF() *Table {
	return New("12Х1МФ", steel12Kh1MFTemps, steel12Kh1MFDurations, steel12Kh1MFCells)
}
