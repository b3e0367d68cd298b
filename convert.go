package gazoshori

import "github.com/kyasu0118/gazoshori/internal/convert"

// ConvertGray converts a truecolor image to grayscale via the luma
// weighting (R*306 + G*601 + B*117) >> 10.
func ConvertGray(img RGBImage) GrayImage { return convert.RGBToGray(img) }

// ConvertRGB converts a grayscale image to truecolor by replicating the
// luminance channel into R, G and B.
func ConvertRGB(img GrayImage) RGBImage { return convert.GrayToRGB(img) }

// ConvertHMB converts a truecolor image to the hue-magnitude-base
// chromatic model.
func ConvertHMB(img RGBImage) HMBImage { return convert.RGBToHMB(img) }

// ConvertRGBFromHMB converts an HMB image back to truecolor. There is no
// conversion defined between HMB and grayscale directly; go through RGB.
func ConvertRGBFromHMB(img HMBImage) RGBImage { return convert.HMBToRGB(img) }
