package kmix

// DefaultCatalog returns the built-in pigment reference table: common
// single-pigment paints across watercolor, oil, acrylic and gouache lines.
// The absorption/scattering spectra are approximations derived from each
// paint's masstone color, sampled on the system grid; callers with
// measured spectral data can build their own Catalog instead, as long as
// entries use the same band grid.
//
// Each call returns a fresh copy, so callers may slice or append without
// affecting others.
func DefaultCatalog() Catalog {
	out := make(Catalog, len(defaultPigments))
	copy(out, defaultPigments)
	return out
}

var defaultPigments = Catalog{
	{
		ID:      "wc-pw6",
		Name:    "Titanium White",
		Brand:   "Winsor & Newton",
		Medium:  MediumWatercolor,
		Color:   Hex("#F4F3EC"),
		Opacity: 0.95,
		KS: Spectrum{
			0.0155, 0.0155, 0.0155, 0.0155, 0.0155, 0.0155,
			0.0155, 0.0155, 0.0140, 0.0125, 0.0112, 0.0099,
			0.0088, 0.0077, 0.0067, 0.0060, 0.0060, 0.0060,
			0.0060, 0.0060, 0.0058, 0.0055, 0.0053, 0.0050,
			0.0050, 0.0050, 0.0050, 0.0050, 0.0050, 0.0050,
			0.0050, 0.0050, 0.0050, 0.0050, 0.0050, 0.0050,
		},
	},
	{
		ID:      "wc-py35",
		Name:    "Cadmium Yellow",
		Brand:   "Winsor & Newton",
		Medium:  MediumWatercolor,
		Color:   Hex("#FFD201"),
		Opacity: 0.8,
		KS: Spectrum{
			49.0050, 49.0050, 49.0050, 49.0050, 49.0050, 49.0050,
			49.0050, 49.0050, 4.9970, 2.0667, 1.1154, 0.6603,
			0.4038, 0.2466, 0.1463, 0.0981, 0.0981, 0.0981,
			0.0981, 0.0981, 0.0574, 0.0233, 0.0057, 0.0001,
			0.0001, 0.0001, 0.0001, 0.0001, 0.0001, 0.0001,
			0.0001, 0.0001, 0.0001, 0.0001, 0.0001, 0.0001,
		},
	},
	{
		ID:      "wc-py43",
		Name:    "Yellow Ochre",
		Brand:   "Winsor & Newton",
		Medium:  MediumWatercolor,
		Color:   Hex("#C6932A"),
		Opacity: 0.65,
		KS: Spectrum{
			20.6067, 20.6067, 20.6067, 20.6067, 20.6067, 20.6067,
			20.6067, 20.6067, 7.6440, 4.4272, 2.9760, 2.1546,
			1.6294, 1.2671, 1.0039, 0.8596, 0.8596, 0.8596,
			0.8596, 0.8596, 0.6220, 0.4103, 0.2706, 0.1755,
			0.1678, 0.1678, 0.1678, 0.1678, 0.1678, 0.1678,
			0.1678, 0.1678, 0.1678, 0.1678, 0.1678, 0.1678,
		},
	},
	{
		ID:      "wc-po20",
		Name:    "Cadmium Orange",
		Brand:   "Holbein",
		Medium:  MediumWatercolor,
		Color:   Hex("#F4741B"),
		Opacity: 0.8,
		KS: Spectrum{
			44.6255, 44.6255, 44.6255, 44.6255, 44.6255, 44.6255,
			44.6255, 44.6255, 14.5353, 8.3767, 5.7277, 4.2567,
			3.3230, 2.6791, 2.2094, 1.9502, 1.9502, 1.9502,
			1.9502, 1.9502, 0.7364, 0.2405, 0.0663, 0.0074,
			0.0050, 0.0050, 0.0050, 0.0050, 0.0050, 0.0050,
			0.0050, 0.0050, 0.0050, 0.0050, 0.0050, 0.0050,
		},
	},
	{
		ID:      "wc-pr108",
		Name:    "Cadmium Red",
		Brand:   "Winsor & Newton",
		Medium:  MediumWatercolor,
		Color:   Hex("#E30E22"),
		Opacity: 0.85,
		KS: Spectrum{
			30.2652, 30.2652, 30.2652, 30.2652, 30.2652, 30.2652,
			30.2652, 30.2652, 33.5158, 37.5212, 42.5790, 49.0050,
			49.0050, 49.0050, 49.0050, 49.0050, 49.0050, 49.0050,
			49.0050, 49.0050, 2.3408, 0.5980, 0.1842, 0.0423,
			0.0350, 0.0350, 0.0350, 0.0350, 0.0350, 0.0350,
			0.0350, 0.0350, 0.0350, 0.0350, 0.0350, 0.0350,
		},
	},
	{
		ID:      "wc-pr83",
		Name:    "Alizarin Crimson",
		Brand:   "Daniel Smith",
		Medium:  MediumWatercolor,
		Color:   Hex("#8E2335"),
		Opacity: 0.25,
		KS: Spectrum{
			13.0622, 13.0622, 13.0622, 13.0622, 13.0622, 13.0622,
			13.0622, 13.0622, 14.0947, 15.2915, 16.6951, 18.3641,
			20.3815, 22.8692, 26.0131, 28.7572, 28.7572, 28.7572,
			28.7572, 28.7572, 6.5828, 2.8505, 1.6241, 1.0266,
			0.9837, 0.9837, 0.9837, 0.9837, 0.9837, 0.9837,
			0.9837, 0.9837, 0.9837, 0.9837, 0.9837, 0.9837,
		},
	},
	{
		ID:      "wc-pv19",
		Name:    "Quinacridone Rose",
		Brand:   "Daniel Smith",
		Medium:  MediumWatercolor,
		Color:   Hex("#E0417E"),
		Opacity: 0.2,
		KS: Spectrum{
			1.5008, 1.5008, 1.5008, 1.5008, 1.5008, 1.5008,
			1.5008, 1.5008, 1.7480, 2.0572, 2.4536, 2.9788,
			3.7056, 4.7741, 6.4937, 8.4853, 8.4853, 8.4853,
			8.4853, 8.4853, 1.7567, 0.5438, 0.1870, 0.0511,
			0.0435, 0.0435, 0.0435, 0.0435, 0.0435, 0.0435,
			0.0435, 0.0435, 0.0435, 0.0435, 0.0435, 0.0435,
		},
	},
	{
		ID:      "wc-pv23",
		Name:    "Dioxazine Violet",
		Brand:   "Holbein",
		Medium:  MediumWatercolor,
		Color:   Hex("#553592"),
		Opacity: 0.35,
		KS: Spectrum{
			0.8832, 0.8832, 0.8832, 0.8832, 0.8832, 0.8832,
			0.8832, 0.8832, 1.0902, 1.3630, 1.7357, 2.2708,
			3.0972, 4.5279, 7.5769, 13.0622, 13.0622, 13.0622,
			13.0622, 13.0622, 9.8078, 7.2662, 5.6990, 4.6371,
			4.5495, 4.5495, 4.5495, 4.5495, 4.5495, 4.5495,
			4.5495, 4.5495, 4.5495, 4.5495, 4.5495, 4.5495,
		},
	},
	{
		ID:      "wc-pb29",
		Name:    "Ultramarine Blue",
		Brand:   "Winsor & Newton",
		Medium:  MediumWatercolor,
		Color:   Hex("#2A3BAD"),
		Opacity: 0.4,
		KS: Spectrum{
			0.4054, 0.4054, 0.4054, 0.4054, 0.4054, 0.4054,
			0.4054, 0.4054, 0.5386, 0.7194, 0.9735, 1.3487,
			1.9457, 3.0208, 5.4699, 10.4544, 10.4544, 10.4544,
			10.4544, 10.4544, 11.6062, 13.5606, 16.2358, 20.1196,
			20.6067, 20.6067, 20.6067, 20.6067, 20.6067, 20.6067,
			20.6067, 20.6067, 20.6067, 20.6067, 20.6067, 20.6067,
		},
	},
	{
		ID:      "wc-pb15",
		Name:    "Phthalo Blue",
		Brand:   "Daniel Smith",
		Medium:  MediumWatercolor,
		Color:   Hex("#0F4C81"),
		Opacity: 0.3,
		KS: Spectrum{
			1.3874, 1.3874, 1.3874, 1.3874, 1.3874, 1.3874,
			1.3874, 1.3874, 1.5952, 1.8488, 2.1646, 2.5673,
			3.0973, 3.8242, 4.8800, 5.9545, 5.9545, 5.9545,
			5.9545, 5.9545, 7.4864, 11.0422, 19.7924, 49.0050,
			49.0050, 49.0050, 49.0050, 49.0050, 49.0050, 49.0050,
			49.0050, 49.0050, 49.0050, 49.0050, 49.0050, 49.0050,
		},
	},
	{
		ID:      "wc-pb27",
		Name:    "Prussian Blue",
		Brand:   "Holbein",
		Medium:  MediumWatercolor,
		Color:   Hex("#14344E"),
		Opacity: 0.45,
		KS: Spectrum{
			5.6010, 5.6010, 5.6010, 5.6010, 5.6010, 5.6010,
			5.6010, 5.6010, 6.1024, 6.6877, 7.3797, 8.2104,
			9.2259, 10.4954, 12.1273, 13.5775, 13.5775, 13.5775,
			13.5775, 13.5775, 16.2482, 21.8310, 32.7727, 49.0050,
			49.0050, 49.0050, 49.0050, 49.0050, 49.0050, 49.0050,
			49.0050, 49.0050, 49.0050, 49.0050, 49.0050, 49.0050,
		},
	},
	{
		ID:      "wc-pg7",
		Name:    "Phthalo Green",
		Brand:   "Daniel Smith",
		Medium:  MediumWatercolor,
		Color:   Hex("#14594A"),
		Opacity: 0.3,
		KS: Spectrum{
			6.3358, 6.3358, 6.3358, 6.3358, 6.3358, 6.3358,
			6.3358, 6.3358, 5.9272, 5.5624, 5.2346, 4.9386,
			4.6699, 4.4250, 4.2009, 4.0550, 4.0550, 4.0550,
			4.0550, 4.0550, 5.1533, 7.6989, 13.9247, 49.0050,
			49.0050, 49.0050, 49.0050, 49.0050, 49.0050, 49.0050,
			49.0050, 49.0050, 49.0050, 49.0050, 49.0050, 49.0050,
		},
	},
	{
		ID:      "wc-pg17",
		Name:    "Viridian",
		Brand:   "Winsor & Newton",
		Medium:  MediumWatercolor,
		Color:   Hex("#40826D"),
		Opacity: 0.4,
		KS: Spectrum{
			2.3460, 2.3460, 2.3460, 2.3460, 2.3460, 2.3460,
			2.3460, 2.3460, 2.1664, 2.0064, 1.8631, 1.7340,
			1.6172, 1.5111, 1.4143, 1.3515, 1.3515, 1.3515,
			1.3515, 1.3515, 1.7302, 2.5193, 4.0303, 7.9987,
			8.7780, 8.7780, 8.7780, 8.7780, 8.7780, 8.7780,
			8.7780, 8.7780, 8.7780, 8.7780, 8.7780, 8.7780,
		},
	},
	{
		ID:      "wc-pbr7s",
		Name:    "Burnt Sienna",
		Brand:   "Winsor & Newton",
		Medium:  MediumWatercolor,
		Color:   Hex("#8A3324"),
		Opacity: 0.55,
		KS: Spectrum{
			27.3504, 27.3504, 27.3504, 27.3504, 27.3504, 27.3504,
			27.3504, 27.3504, 24.4550, 22.0967, 20.1388, 18.4873,
			17.0756, 15.8550, 14.7892, 14.1201, 14.1201, 14.1201,
			14.1201, 14.1201, 5.6027, 2.8098, 1.7134, 1.1370,
			1.0944, 1.0944, 1.0944, 1.0944, 1.0944, 1.0944,
			1.0944, 1.0944, 1.0944, 1.0944, 1.0944, 1.0944,
		},
	},
	{
		ID:      "wc-pbr7u",
		Name:    "Raw Umber",
		Brand:   "Daniel Smith",
		Medium:  MediumWatercolor,
		Color:   Hex("#7A6548"),
		Opacity: 0.6,
		KS: Spectrum{
			6.7481, 6.7481, 6.7481, 6.7481, 6.7481, 6.7481,
			6.7481, 6.7481, 5.8590, 5.1554, 4.5848, 4.1130,
			3.7166, 3.3789, 3.0880, 2.9072, 2.9072, 2.9072,
			2.9072, 2.9072, 2.5753, 2.2156, 1.9259, 1.6879,
			1.6664, 1.6664, 1.6664, 1.6664, 1.6664, 1.6664,
			1.6664, 1.6664, 1.6664, 1.6664, 1.6664, 1.6664,
		},
	},
	{
		ID:      "wc-pbk9",
		Name:    "Ivory Black",
		Brand:   "Winsor & Newton",
		Medium:  MediumWatercolor,
		Color:   Hex("#201F1D"),
		Opacity: 0.75,
		KS: Spectrum{
			39.7013, 39.7013, 39.7013, 39.7013, 39.7013, 39.7013,
			39.7013, 39.7013, 39.1014, 38.5190, 37.9532, 37.4035,
			36.8690, 36.3493, 35.8436, 35.4977, 35.4977, 35.4977,
			35.4977, 35.4977, 35.1169, 34.6215, 34.1394, 33.6703,
			33.6240, 33.6240, 33.6240, 33.6240, 33.6240, 33.6240,
			33.6240, 33.6240, 33.6240, 33.6240, 33.6240, 33.6240,
		},
	},
	{
		ID:      "oil-pw6",
		Name:    "Titanium White",
		Brand:   "Gamblin",
		Medium:  MediumOil,
		Color:   Hex("#F7F6F1"),
		Opacity: 0.98,
		KS: Spectrum{
			0.0082, 0.0082, 0.0082, 0.0082, 0.0082, 0.0082,
			0.0082, 0.0082, 0.0075, 0.0067, 0.0060, 0.0054,
			0.0048, 0.0042, 0.0037, 0.0033, 0.0033, 0.0033,
			0.0033, 0.0033, 0.0032, 0.0030, 0.0028, 0.0026,
			0.0026, 0.0026, 0.0026, 0.0026, 0.0026, 0.0026,
			0.0026, 0.0026, 0.0026, 0.0026, 0.0026, 0.0026,
		},
	},
	{
		ID:      "oil-py35",
		Name:    "Cadmium Yellow",
		Brand:   "Gamblin",
		Medium:  MediumOil,
		Color:   Hex("#FCCF06"),
		Opacity: 0.9,
		KS: Spectrum{
			49.0050, 49.0050, 49.0050, 49.0050, 49.0050, 49.0050,
			49.0050, 49.0050, 5.0932, 2.1414, 1.1695, 0.7009,
			0.4350, 0.2708, 0.1649, 0.1133, 0.1133, 0.1133,
			0.1133, 0.1133, 0.0685, 0.0301, 0.0091, 0.0007,
			0.0004, 0.0004, 0.0004, 0.0004, 0.0004, 0.0004,
			0.0004, 0.0004, 0.0004, 0.0004, 0.0004, 0.0004,
		},
	},
	{
		ID:      "oil-pr108",
		Name:    "Cadmium Red",
		Brand:   "Gamblin",
		Medium:  MediumOil,
		Color:   Hex("#DE1826"),
		Opacity: 0.9,
		KS: Spectrum{
			24.8063, 24.8063, 24.8063, 24.8063, 24.8063, 24.8063,
			24.8063, 24.8063, 26.7077, 28.9118, 31.4973, 34.5725,
			38.2910, 42.8782, 48.6786, 49.0050, 49.0050, 49.0050,
			49.0050, 49.0050, 2.4159, 0.6521, 0.2157, 0.0584,
			0.0497, 0.0497, 0.0497, 0.0497, 0.0497, 0.0497,
			0.0497, 0.0497, 0.0497, 0.0497, 0.0497, 0.0497,
		},
	},
	{
		ID:      "oil-pb29",
		Name:    "Ultramarine Blue",
		Brand:   "Gamblin",
		Medium:  MediumOil,
		Color:   Hex("#31379E"),
		Opacity: 0.5,
		KS: Spectrum{
			0.6333, 0.6333, 0.6333, 0.6333, 0.6333, 0.6333,
			0.6333, 0.6333, 0.8043, 1.0324, 1.3481, 1.8074,
			2.5278, 3.8029, 6.6300, 12.1066, 12.1066, 12.1066,
			12.1066, 12.1066, 12.6256, 13.3855, 14.2354, 15.1925,
			15.2949, 15.2949, 15.2949, 15.2949, 15.2949, 15.2949,
			15.2949, 15.2949, 15.2949, 15.2949, 15.2949, 15.2949,
		},
	},
	{
		ID:      "oil-pg7",
		Name:    "Phthalo Green",
		Brand:   "Gamblin",
		Medium:  MediumOil,
		Color:   Hex("#0F4E3F"),
		Opacity: 0.35,
		KS: Spectrum{
			9.0839, 9.0839, 9.0839, 9.0839, 9.0839, 9.0839,
			9.0839, 9.0839, 8.4347, 7.8647, 7.3602, 6.9105,
			6.5072, 6.1436, 5.8140, 5.6010, 5.6010, 5.6010,
			5.6010, 5.6010, 7.0601, 10.4564, 18.8701, 49.0050,
			49.0050, 49.0050, 49.0050, 49.0050, 49.0050, 49.0050,
			49.0050, 49.0050, 49.0050, 49.0050, 49.0050, 49.0050,
		},
	},
	{
		ID:      "oil-pbr7s",
		Name:    "Burnt Sienna",
		Brand:   "Gamblin",
		Medium:  MediumOil,
		Color:   Hex("#86301F"),
		Opacity: 0.6,
		KS: Spectrum{
			35.4977, 35.4977, 35.4977, 35.4977, 35.4977, 35.4977,
			35.4977, 35.4977, 30.7315, 27.0670, 24.1618, 21.8021,
			19.8476, 18.2021, 16.7978, 15.9313, 15.9313, 15.9313,
			15.9313, 15.9313, 6.1536, 3.0788, 1.8869, 1.2627,
			1.2165, 1.2165, 1.2165, 1.2165, 1.2165, 1.2165,
			1.2165, 1.2165, 1.2165, 1.2165, 1.2165, 1.2165,
		},
	},
	{
		ID:      "oil-pbk9",
		Name:    "Ivory Black",
		Brand:   "Gamblin",
		Medium:  MediumOil,
		Color:   Hex("#232221"),
		Opacity: 0.85,
		KS: Spectrum{
			31.8839, 31.8839, 31.8839, 31.8839, 31.8839, 31.8839,
			31.8839, 31.8839, 31.6643, 31.4476, 31.2337, 31.0227,
			30.8144, 30.6087, 30.4058, 30.2652, 30.2652, 30.2652,
			30.2652, 30.2652, 29.9596, 29.5613, 29.1730, 28.7946,
			28.7572, 28.7572, 28.7572, 28.7572, 28.7572, 28.7572,
			28.7572, 28.7572, 28.7572, 28.7572, 28.7572, 28.7572,
		},
	},
	{
		ID:      "oil-py43",
		Name:    "Yellow Ochre",
		Brand:   "Gamblin",
		Medium:  MediumOil,
		Color:   Hex("#C08F2E"),
		Opacity: 0.7,
		KS: Spectrum{
			17.3147, 17.3147, 17.3147, 17.3147, 17.3147, 17.3147,
			17.3147, 17.3147, 7.4408, 4.5061, 3.1041, 2.2868,
			1.7544, 1.3821, 1.1087, 0.9577, 0.9577, 0.9577,
			0.9577, 0.9577, 0.7058, 0.4787, 0.3264, 0.2208,
			0.2121, 0.2121, 0.2121, 0.2121, 0.2121, 0.2121,
			0.2121, 0.2121, 0.2121, 0.2121, 0.2121, 0.2121,
		},
	},
	{
		ID:      "ac-pw6",
		Name:    "Titanium White",
		Brand:   "Liquitex",
		Medium:  MediumAcrylic,
		Color:   Hex("#F5F4EF"),
		Opacity: 0.97,
		KS: Spectrum{
			0.0108, 0.0108, 0.0108, 0.0108, 0.0108, 0.0108,
			0.0108, 0.0108, 0.0099, 0.0091, 0.0083, 0.0075,
			0.0068, 0.0061, 0.0055, 0.0050, 0.0050, 0.0050,
			0.0050, 0.0050, 0.0048, 0.0046, 0.0044, 0.0042,
			0.0041, 0.0041, 0.0041, 0.0041, 0.0041, 0.0041,
			0.0041, 0.0041, 0.0041, 0.0041, 0.0041, 0.0041,
		},
	},
	{
		ID:      "ac-py3",
		Name:    "Hansa Yellow Light",
		Brand:   "Liquitex",
		Medium:  MediumAcrylic,
		Color:   Hex("#F6E120"),
		Opacity: 0.45,
		KS: Spectrum{
			33.6240, 33.6240, 33.6240, 33.6240, 33.6240, 33.6240,
			33.6240, 33.6240, 3.5861, 1.5272, 0.8058, 0.4551,
			0.2592, 0.1426, 0.0720, 0.0405, 0.0405, 0.0405,
			0.0405, 0.0405, 0.0292, 0.0175, 0.0092, 0.0037,
			0.0033, 0.0033, 0.0033, 0.0033, 0.0033, 0.0033,
			0.0033, 0.0033, 0.0033, 0.0033, 0.0033, 0.0033,
		},
	},
	{
		ID:      "ac-pr112",
		Name:    "Naphthol Red",
		Brand:   "Liquitex",
		Medium:  MediumAcrylic,
		Color:   Hex("#D62B2B"),
		Opacity: 0.55,
		KS: Spectrum{
			19.7095, 19.7095, 19.7095, 19.7095, 19.7095, 19.7095,
			19.7095, 19.7095, 19.7095, 19.7095, 19.7095, 19.7095,
			19.7095, 19.7095, 19.7095, 19.7095, 19.7095, 19.7095,
			19.7095, 19.7095, 2.3987, 0.7276, 0.2698, 0.0905,
			0.0798, 0.0798, 0.0798, 0.0798, 0.0798, 0.0798,
			0.0798, 0.0798, 0.0798, 0.0798, 0.0798, 0.0798,
		},
	},
	{
		ID:      "ac-pv19",
		Name:    "Quinacridone Magenta",
		Brand:   "Liquitex",
		Medium:  MediumAcrylic,
		Color:   Hex("#C13070"),
		Opacity: 0.25,
		KS: Spectrum{
			2.1669, 2.1669, 2.1669, 2.1669, 2.1669, 2.1669,
			2.1669, 2.1669, 2.5249, 2.9817, 3.5835, 4.4107,
			5.6162, 7.5322, 11.0401, 15.9313, 15.9313, 15.9313,
			15.9313, 15.9313, 2.9798, 1.0633, 0.4788, 0.2213,
			0.2042, 0.2042, 0.2042, 0.2042, 0.2042, 0.2042,
			0.2042, 0.2042, 0.2042, 0.2042, 0.2042, 0.2042,
		},
	},
	{
		ID:      "ac-pb15",
		Name:    "Phthalo Blue",
		Brand:   "Liquitex",
		Medium:  MediumAcrylic,
		Color:   Hex("#155086"),
		Opacity: 0.35,
		KS: Spectrum{
			1.2165, 1.2165, 1.2165, 1.2165, 1.2165, 1.2165,
			1.2165, 1.2165, 1.4040, 1.6327, 1.9169, 2.2786,
			2.7529, 3.4000, 4.3327, 5.2730, 5.2730, 5.2730,
			5.2730, 5.2730, 6.6027, 9.6247, 16.6967, 49.0050,
			49.0050, 49.0050, 49.0050, 49.0050, 49.0050, 49.0050,
			49.0050, 49.0050, 49.0050, 49.0050, 49.0050, 49.0050,
		},
	},
	{
		ID:      "ac-pg7",
		Name:    "Phthalo Green",
		Brand:   "Liquitex",
		Medium:  MediumAcrylic,
		Color:   Hex("#176052"),
		Opacity: 0.35,
		KS: Spectrum{
			4.9680, 4.9680, 4.9680, 4.9680, 4.9680, 4.9680,
			4.9680, 4.9680, 4.6871, 4.4319, 4.1992, 3.9861,
			3.7902, 3.6097, 3.4427, 3.3331, 3.3331, 3.3331,
			3.3331, 3.3331, 4.2642, 6.4197, 11.6651, 42.9278,
			49.0050, 49.0050, 49.0050, 49.0050, 49.0050, 49.0050,
			49.0050, 49.0050, 49.0050, 49.0050, 49.0050, 49.0050,
		},
	},
	{
		ID:      "ac-pbr7u",
		Name:    "Raw Umber",
		Brand:   "Liquitex",
		Medium:  MediumAcrylic,
		Color:   Hex("#6F5D43"),
		Opacity: 0.65,
		KS: Spectrum{
			7.9362, 7.9362, 7.9362, 7.9362, 7.9362, 7.9362,
			7.9362, 7.9362, 6.9611, 6.1798, 5.5398, 5.0061,
			4.5544, 4.1672, 3.8318, 3.6225, 3.6225, 3.6225,
			3.6225, 3.6225, 3.2576, 2.8550, 2.5250, 2.2499,
			2.2249, 2.2249, 2.2249, 2.2249, 2.2249, 2.2249,
			2.2249, 2.2249, 2.2249, 2.2249, 2.2249, 2.2249,
		},
	},
	{
		ID:      "ac-pbk7",
		Name:    "Carbon Black",
		Brand:   "Liquitex",
		Medium:  MediumAcrylic,
		Color:   Hex("#1C1C1C"),
		Opacity: 0.9,
		KS: Spectrum{
			42.0638, 42.0638, 42.0638, 42.0638, 42.0638, 42.0638,
			42.0638, 42.0638, 42.0638, 42.0638, 42.0638, 42.0638,
			42.0638, 42.0638, 42.0638, 42.0638, 42.0638, 42.0638,
			42.0638, 42.0638, 42.0638, 42.0638, 42.0638, 42.0638,
			42.0638, 42.0638, 42.0638, 42.0638, 42.0638, 42.0638,
			42.0638, 42.0638, 42.0638, 42.0638, 42.0638, 42.0638,
		},
	},
	{
		ID:      "gq-pw6",
		Name:    "Zinc White",
		Brand:   "Holbein",
		Medium:  MediumGouache,
		Color:   Hex("#F2F2EE"),
		Opacity: 0.9,
		KS: Spectrum{
			0.0123, 0.0123, 0.0123, 0.0123, 0.0123, 0.0123,
			0.0123, 0.0123, 0.0115, 0.0108, 0.0101, 0.0094,
			0.0087, 0.0081, 0.0075, 0.0071, 0.0071, 0.0071,
			0.0071, 0.0071, 0.0071, 0.0071, 0.0071, 0.0071,
			0.0071, 0.0071, 0.0071, 0.0071, 0.0071, 0.0071,
			0.0071, 0.0071, 0.0071, 0.0071, 0.0071, 0.0071,
		},
	},
	{
		ID:      "gq-py35",
		Name:    "Permanent Yellow",
		Brand:   "Holbein",
		Medium:  MediumGouache,
		Color:   Hex("#FBD020"),
		Opacity: 0.85,
		KS: Spectrum{
			33.6240, 33.6240, 33.6240, 33.6240, 33.6240, 33.6240,
			33.6240, 33.6240, 4.3391, 1.9522, 1.0914, 0.6616,
			0.4132, 0.2581, 0.1573, 0.1081, 0.1081, 0.1081,
			0.1081, 0.1081, 0.0665, 0.0302, 0.0098, 0.0010,
			0.0006, 0.0006, 0.0006, 0.0006, 0.0006, 0.0006,
			0.0006, 0.0006, 0.0006, 0.0006, 0.0006, 0.0006,
		},
	},
	{
		ID:      "gq-pr108",
		Name:    "Flame Red",
		Brand:   "Holbein",
		Medium:  MediumGouache,
		Color:   Hex("#DD2A2A"),
		Opacity: 0.85,
		KS: Spectrum{
			20.6067, 20.6067, 20.6067, 20.6067, 20.6067, 20.6067,
			20.6067, 20.6067, 20.6067, 20.6067, 20.6067, 20.6067,
			20.6067, 20.6067, 20.6067, 20.6067, 20.6067, 20.6067,
			20.6067, 20.6067, 2.2146, 0.6357, 0.2174, 0.0618,
			0.0530, 0.0530, 0.0530, 0.0530, 0.0530, 0.0530,
			0.0530, 0.0530, 0.0530, 0.0530, 0.0530, 0.0530,
		},
	},
	{
		ID:      "gq-pb29",
		Name:    "Ultramarine",
		Brand:   "Holbein",
		Medium:  MediumGouache,
		Color:   Hex("#3341A5"),
		Opacity: 0.55,
		KS: Spectrum{
			0.5170, 0.5170, 0.5170, 0.5170, 0.5170, 0.5170,
			0.5170, 0.5170, 0.6630, 0.8569, 1.1230, 1.5050,
			2.0904, 3.0859, 5.1194, 8.4853, 8.4853, 8.4853,
			8.4853, 8.4853, 9.2261, 10.4165, 11.9228, 13.8898,
			14.1201, 14.1201, 14.1201, 14.1201, 14.1201, 14.1201,
			14.1201, 14.1201, 14.1201, 14.1201, 14.1201, 14.1201,
		},
	},
}
