package ds3231

// decToBcd packs a two-digit decimal value into the BCD byte layout
// every time, date and alarm register uses. Valid for 0 through 99;
// the driver range-checks before encoding, so the silent truncation
// the format would otherwise allow for larger values cannot occur.
func decToBcd(dec int) uint8 {
	return uint8(dec/10<<4 | dec%10)
}

// bcdToDec unpacks a BCD byte. Both nibbles must already be masked
// down to digits; mode and flag bits are the caller's problem.
func bcdToDec(bcd uint8) int {
	return int(bcd>>4&0x0F)*10 + int(bcd&0x0F)
}
