package mot

// Three objects moving together with horizontal offset. Neighbouring objects overlap each other.
func getSimilarData() ([][4]float64, [][4]float64, [][4]float64) {
	bboxesOne := [][4]float64{
		{236, -25, 386, 35}, {237, -24, 387, 36}, {238, -22, 388, 38}, {236, -20, 386, 40}, {236, -19, 386, 41}, {237, -18, 387, 42},
		{237, -18, 387, 42}, {238, -17, 388, 43}, {237, -14, 387, 46}, {237, -14, 387, 46}, {237, -12, 387, 48}, {237, -12, 387, 48},
		{237, -11, 387, 49}, {237, -11, 387, 49}, {237, -10, 387, 50}, {237, -10, 387, 50}, {237, -8, 387, 52}, {237, -8, 387, 52},
		{236, -7, 386, 53}, {236, -7, 386, 53}, {236, -6, 386, 54}, {236, -6, 386, 54}, {236, -2, 386, 58}, {235, 0, 385, 60},
		{236, 2, 386, 62}, {236, 5, 386, 65}, {236, 9, 386, 69}, {235, 12, 385, 72}, {235, 14, 385, 74}, {233, 16, 383, 76},
		{232, 26, 382, 86}, {233, 28, 383, 88}, {233, 40, 383, 100}, {233, 30, 383, 90}, {232, 22, 382, 82}, {232, 34, 382, 94},
		{232, 21, 382, 81}, {233, 40, 383, 100}, {232, 40, 382, 100}, {232, 40, 382, 100}, {232, 36, 382, 96}, {232, 53, 382, 113},
		{232, 50, 382, 110}, {233, 55, 383, 115}, {232, 50, 382, 110}, {234, 68, 384, 128}, {231, 49, 381, 109}, {232, 68, 382, 128},
		{231, 31, 381, 91}, {232, 64, 382, 124}, {233, 71, 383, 131}, {231, 64, 381, 124}, {231, 74, 381, 134}, {231, 64, 381, 124},
		{230, 77, 380, 137}, {232, 82, 382, 142}, {232, 78, 382, 138}, {232, 78, 382, 138}, {231, 79, 381, 139}, {231, 79, 381, 139},
	}
	bboxesTwo := [][4]float64{
		{321, -25, 471, 35}, {322, -24, 472, 36}, {323, -22, 473, 38}, {321, -20, 471, 40}, {321, -19, 471, 41}, {322, -18, 472, 42},
		{322, -18, 472, 42}, {323, -17, 473, 43}, {322, -14, 472, 46}, {322, -14, 472, 46}, {322, -12, 472, 48}, {322, -12, 472, 48},
		{322, -11, 472, 49}, {322, -11, 472, 49}, {322, -10, 472, 50}, {322, -10, 472, 50}, {322, -8, 472, 52}, {322, -8, 472, 52},
		{321, -7, 471, 53}, {321, -7, 471, 53}, {321, -6, 471, 54}, {321, -6, 471, 54}, {321, -2, 471, 58}, {320, 0, 470, 60},
		{321, 2, 471, 62}, {321, 5, 471, 65}, {321, 9, 471, 69}, {320, 12, 470, 72}, {320, 14, 470, 74}, {318, 16, 468, 76},
		{317, 26, 467, 86}, {318, 28, 468, 88}, {318, 40, 468, 100}, {318, 30, 468, 90}, {317, 22, 467, 82}, {317, 34, 467, 94},
		{317, 21, 467, 81}, {318, 40, 468, 100}, {317, 40, 467, 100}, {317, 40, 467, 100}, {317, 36, 467, 96}, {317, 53, 467, 113},
		{317, 50, 467, 110}, {318, 55, 468, 115}, {317, 50, 467, 110}, {319, 68, 469, 128}, {316, 49, 466, 109}, {317, 68, 467, 128},
		{316, 31, 466, 91}, {317, 64, 467, 124}, {318, 71, 468, 131}, {316, 64, 466, 124}, {316, 74, 466, 134}, {316, 64, 466, 124},
		{315, 77, 465, 137}, {317, 82, 467, 142}, {317, 78, 467, 138}, {317, 78, 467, 138}, {316, 79, 466, 139}, {316, 79, 466, 139},
	}
	bboxesThree := [][4]float64{
		{151, -25, 301, 35}, {152, -24, 302, 36}, {153, -22, 303, 38}, {151, -20, 301, 40}, {151, -19, 301, 41}, {152, -18, 302, 42},
		{152, -18, 302, 42}, {153, -17, 303, 43}, {152, -14, 302, 46}, {152, -14, 302, 46}, {152, -12, 302, 48}, {152, -12, 302, 48},
		{152, -11, 302, 49}, {152, -11, 302, 49}, {152, -10, 302, 50}, {152, -10, 302, 50}, {152, -8, 302, 52}, {152, -8, 302, 52},
		{151, -7, 301, 53}, {151, -7, 301, 53}, {151, -6, 301, 54}, {151, -6, 301, 54}, {151, -2, 301, 58}, {150, 0, 300, 60},
		{151, 2, 301, 62}, {151, 5, 301, 65}, {151, 9, 301, 69}, {150, 12, 300, 72}, {150, 14, 300, 74}, {148, 16, 298, 76},
		{147, 26, 297, 86}, {148, 28, 298, 88}, {148, 40, 298, 100}, {148, 30, 298, 90}, {147, 22, 297, 82}, {147, 34, 297, 94},
		{147, 21, 297, 81}, {148, 40, 298, 100}, {147, 40, 297, 100}, {147, 40, 297, 100}, {147, 36, 297, 96}, {147, 53, 297, 113},
		{147, 50, 297, 110}, {148, 55, 298, 115}, {147, 50, 297, 110}, {149, 68, 299, 128}, {146, 49, 296, 109}, {147, 68, 297, 128},
		{146, 31, 296, 91}, {147, 64, 297, 124}, {148, 71, 298, 131}, {146, 64, 296, 124}, {146, 74, 296, 134}, {146, 64, 296, 124},
		{145, 77, 295, 137}, {147, 82, 297, 142}, {147, 78, 297, 138}, {147, 78, 297, 138}, {146, 79, 296, 139}, {146, 79, 296, 139},
	}
	return bboxesOne, bboxesTwo, bboxesThree
}
