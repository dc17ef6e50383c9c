package fsarcamp

// Band identifies an F-SAR frequency band.
type Band string

// Bands flown by the F-SAR system.
const (
	BandX Band = "X"
	BandC Band = "C"
	BandS Band = "S"
	BandL Band = "L"
	BandP Band = "P"
)

// ValidBands contains all band identifiers the loaders accept.
var ValidBands = []Band{BandX, BandC, BandS, BandL, BandP}

// speedOfLight in m/s, used to derive wavelengths from center frequencies.
const speedOfLight = 299792458.0

// centerFrequencyHz maps each band to the F-SAR center frequency.
var centerFrequencyHz = map[Band]float64{
	BandX: 9.60e9,
	BandC: 5.30e9,
	BandS: 3.25e9,
	BandL: 1.325e9,
	BandP: 0.35e9,
}

// IsValid checks if the given band is one of the supported F-SAR bands.
func (b Band) IsValid() bool {
	_, ok := centerFrequencyHz[b]
	return ok
}

// CenterFrequency returns the F-SAR center frequency of the band in Hz.
func CenterFrequency(b Band) (float64, error) {
	freq, ok := centerFrequencyHz[b]
	if !ok {
		return 0, NotFoundf("band %q", string(b))
	}
	return freq, nil
}

// Wavelength returns the radar wavelength of the band in meters.
func Wavelength(b Band) (float64, error) {
	freq, err := CenterFrequency(b)
	if err != nil {
		return 0, err
	}
	return speedOfLight / freq, nil
}
