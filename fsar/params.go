package fsar

import (
	"encoding/xml"
	"os"

	"github.com/polinsar/fsarcamp"
	"github.com/polinsar/fsarcamp/raster"
)

// rdpFile mirrors the processing parameter XML written next to the RGI
// products. Only the spacing and resolution fields are consumed here.
type rdpFile struct {
	XMLName        xml.Name `xml:"processing_parameters"`
	PixelSpacingAz float64  `xml:"ps_az"`
	PixelSpacingRg float64  `xml:"ps_rg"`
	ResolutionAz   float64  `xml:"res_az"`
	ResolutionRg   float64  `xml:"res_rg"`
}

// RDPParams loads the pixel spacing and resolution of this pass from its
// processing parameter file.
func (p Pass) RDPParams() (raster.RDPParams, error) {
	path := p.RDPPath()
	data, err := os.ReadFile(path)
	if err != nil {
		return raster.RDPParams{}, fsarcamp.PathError(path, err)
	}
	var f rdpFile
	if err := xml.Unmarshal(data, &f); err != nil {
		return raster.RDPParams{}, fsarcamp.Formatf("%s: parse processing parameters: %v", path, err)
	}
	params := raster.RDPParams{
		PixelSpacingAz: f.PixelSpacingAz,
		PixelSpacingRg: f.PixelSpacingRg,
		ResolutionAz:   f.ResolutionAz,
		ResolutionRg:   f.ResolutionRg,
	}
	if params.PixelSpacingAz <= 0 || params.PixelSpacingRg <= 0 ||
		params.ResolutionAz <= 0 || params.ResolutionRg <= 0 {
		return raster.RDPParams{}, fsarcamp.Formatf("%s: non-positive spacing or resolution", path)
	}
	return params, nil
}
