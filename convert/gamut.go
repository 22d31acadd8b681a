package convert

import "github.com/kpfaulkner/csscolor/util"

// Linear RGB primaries to XYZ D50 for each named gamut, and their inverses.
var (
	SRGBToXYZD50Matrix = util.Matrix3{
		{0.436065674, 0.385147095, 0.143066406},
		{0.222488403, 0.716873169, 0.060607910},
		{0.013916016, 0.097076416, 0.714096069},
	}
	XYZD50ToSRGBMatrix = util.Matrix3{
		{3.134112151374599, -1.6173924597114966, -0.4906334036481285},
		{-0.9787872938826594, 1.9162795854799963, 0.0334547139520088},
		{0.07198304248352326, -0.2289858493321844, 1.4053851325241447},
	}

	DisplayP3ToXYZD50Matrix = util.Matrix3{
		{0.515102, 0.291965, 0.157153},
		{0.241182, 0.692236, 0.0665819},
		{-0.00104941, 0.0418818, 0.784378},
	}
	XYZD50ToDisplayP3Matrix = util.Matrix3{
		{2.404045155982687, -0.9898986932663839, -0.3976317191366333},
		{-0.8422283799266768, 1.7988505115115485, 0.016048170293157416},
		{0.04818705979712955, -0.09737385156228891, 1.2735066448052303},
	}

	AdobeRGBToXYZD50Matrix = util.Matrix3{
		{0.60974, 0.20528, 0.14919},
		{0.31111, 0.62567, 0.06322},
		{0.01947, 0.06087, 0.74457},
	}
	XYZD50ToAdobeRGBMatrix = util.Matrix3{
		{1.9625385510109137, -0.6106892546501431, -0.3413827467482388},
		{-0.9787580455521, 1.9161624707082339, 0.03341676594241408},
		{0.028696263137883395, -0.1406807819331586, 1.349252109991369},
	}

	Rec2020ToXYZD50Matrix = util.Matrix3{
		{0.673459, 0.165661, 0.125100},
		{0.279033, 0.675338, 0.0456288},
		{-0.00193139, 0.0299794, 0.797162},
	}
	XYZD50ToRec2020Matrix = util.Matrix3{
		{1.647275201661012, -0.3936024771460771, -0.23598028884792507},
		{-0.6826176165196962, 1.647617775014935, 0.01281626807852422},
		{0.029662725298529837, -0.06291668721366285, 1.2533964313435522},
	}

	ProPhotoToXYZD50Matrix = util.Matrix3{
		{0.7976700747153241, 0.13519395152800417, 0.03135596341127167},
		{0.28803902352472205, 0.7118744007923554, 0.00008661179538844252},
		{2.739876695467402e-7, -1.4405226518969991e-6, 0.825211112593861},
	}
	XYZD50ToProPhotoMatrix = util.Matrix3{
		{1.3459533710138858, -0.25561367037652133, -0.051116041522131374},
		{-0.544600415668951, 1.5081687311475767, 0.020535163968720935},
		{-1.3975622054109725e-6, 0.000002717590904589903, 1.2118111696814942},
	}
)

// Chromatic adaptation between the D65 and D50 reference whites.
var (
	XYZD65ToXYZD50Matrix = util.Matrix3{
		{1.0478573189120088, 0.022907374491829943, -0.050162247377152525},
		{0.029570500050499514, 0.9904755577034089, -0.017061518194840468},
		{-0.00924047197558879, 0.015052921526981566, 0.7519708530777581},
	}
	XYZD50ToXYZD65Matrix = util.Matrix3{
		{0.9555366447632887, -0.02306009252137888, 0.06321844147263304},
		{-0.028315378228764922, 1.009951351591575, 0.021026001591792402},
		{0.012308773293784308, -0.02050053471777469, 1.3301947294775631},
	}

	XYZD65ToSRGBLinearMatrix = util.Matrix3{
		{3.2408089365140573, -1.5375788839307314, -0.4985609572551541},
		{-0.9692732213205414, 1.876110235238969, 0.041560501141251774},
		{0.05567030990267439, -0.2040007921971802, 1.0571046720577026},
	}
)

// Oklab <-> LMS <-> XYZ D65.
var (
	OklabToLMSMatrix = util.Matrix3{
		{0.99999999845051981432, 0.39633779217376785678, 0.21580375806075880339},
		{1.0000000088817607767, -0.10556134232365635, -0.06385417477170591},
		{1.0000000546724109177, -0.08948418209496575, -1.2914855378640917},
	}
	LMSToOklabMatrix = util.Matrix3{
		{0.2104542553, 0.7936177849999999, -0.0040720468},
		{1.9779984951000003, -2.4285922049999997, 0.4505937099000001},
		{0.025904037099999982, 0.7827717662, -0.8086757660000001},
	}
	XYZToLMSMatrix = util.Matrix3{
		{0.8190224432164319, 0.3619062562801221, -0.12887378261216414},
		{0.0329836671980271, 0.9292868468965546, 0.03614466816999844},
		{0.048177199566046255, 0.26423952494422764, 0.6335478258136937},
	}
	LMSToXYZMatrix = util.Matrix3{
		{1.226879873374156, -0.5578149965554814, 0.2813910501772159},
		{-0.040575762624313734, 1.1122868293970596, -0.07171106666151703},
		{-0.07637294974672144, -0.4214933239627915, 1.586924024427242},
	}
)
