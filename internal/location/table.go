package location

import "fmt"

// prefixRange covers an inclusive span of 3-digit ZIP prefixes that share a
// sectional center facility. Cities are the SCF city, not every town in the
// range; the chat prompt only needs metro-level context.
type prefixRange struct {
	lo, hi int
	city   string
	state  string
}

var prefixRanges = []prefixRange{
	// Puerto Rico
	{6, 9, "San Juan", "PR"},
	// Massachusetts
	{10, 13, "Springfield", "MA"},
	{14, 17, "Worcester", "MA"},
	{18, 19, "Woburn", "MA"},
	{20, 24, "Boston", "MA"},
	{25, 27, "Buzzards Bay", "MA"},
	// Rhode Island
	{28, 29, "Providence", "RI"},
	// New Hampshire
	{30, 38, "Manchester", "NH"},
	// Maine
	{39, 49, "Portland", "ME"},
	// Vermont
	{50, 59, "Burlington", "VT"},
	// Connecticut
	{60, 63, "Hartford", "CT"},
	{64, 66, "New Haven", "CT"},
	{67, 67, "Waterbury", "CT"},
	{68, 69, "Stamford", "CT"},
	// New Jersey
	{70, 73, "Newark", "NJ"},
	{74, 75, "Paterson", "NJ"},
	{76, 76, "Hackensack", "NJ"},
	{77, 77, "Red Bank", "NJ"},
	{78, 78, "Dover", "NJ"},
	{79, 79, "Summit", "NJ"},
	{80, 81, "Camden", "NJ"},
	{82, 84, "Atlantic City", "NJ"},
	{85, 86, "Trenton", "NJ"},
	{87, 87, "Lakewood", "NJ"},
	{88, 89, "Edison", "NJ"},
	// New York
	{100, 102, "New York", "NY"},
	{103, 103, "Staten Island", "NY"},
	{104, 104, "Bronx", "NY"},
	{105, 108, "White Plains", "NY"},
	{109, 109, "Suffern", "NY"},
	{110, 111, "Long Island City", "NY"},
	{112, 112, "Brooklyn", "NY"},
	{113, 113, "Flushing", "NY"},
	{114, 114, "Jamaica", "NY"},
	{115, 118, "Hicksville", "NY"},
	{119, 119, "Riverhead", "NY"},
	{120, 123, "Albany", "NY"},
	{124, 127, "Kingston", "NY"},
	{128, 129, "Plattsburgh", "NY"},
	{130, 132, "Syracuse", "NY"},
	{133, 135, "Utica", "NY"},
	{136, 136, "Watertown", "NY"},
	{137, 139, "Binghamton", "NY"},
	{140, 143, "Buffalo", "NY"},
	{144, 146, "Rochester", "NY"},
	{147, 147, "Jamestown", "NY"},
	{148, 149, "Elmira", "NY"},
	// Pennsylvania
	{150, 152, "Pittsburgh", "PA"},
	{153, 156, "Greensburg", "PA"},
	{157, 159, "Johnstown", "PA"},
	{160, 162, "Butler", "PA"},
	{163, 163, "Oil City", "PA"},
	{164, 165, "Erie", "PA"},
	{166, 168, "Altoona", "PA"},
	{170, 171, "Harrisburg", "PA"},
	{172, 172, "Chambersburg", "PA"},
	{173, 174, "York", "PA"},
	{175, 176, "Lancaster", "PA"},
	{177, 178, "Williamsport", "PA"},
	{179, 179, "Pottsville", "PA"},
	{180, 183, "Allentown", "PA"},
	{184, 185, "Scranton", "PA"},
	{186, 188, "Wilkes-Barre", "PA"},
	{189, 189, "Doylestown", "PA"},
	{190, 194, "Philadelphia", "PA"},
	{195, 196, "Reading", "PA"},
	// Delaware
	{197, 199, "Wilmington", "DE"},
	// District of Columbia
	{200, 200, "Washington", "DC"},
	{202, 205, "Washington", "DC"},
	// Virginia (Northern VA shares the 201 prefix)
	{201, 201, "Dulles", "VA"},
	// Maryland
	{206, 207, "Laurel", "MD"},
	{208, 209, "Silver Spring", "MD"},
	{210, 212, "Baltimore", "MD"},
	{214, 214, "Annapolis", "MD"},
	{215, 215, "Cumberland", "MD"},
	{216, 216, "Easton", "MD"},
	{217, 217, "Frederick", "MD"},
	{218, 218, "Salisbury", "MD"},
	{219, 219, "Baltimore", "MD"},
	// Virginia
	{220, 223, "Arlington", "VA"},
	{224, 225, "Fredericksburg", "VA"},
	{226, 226, "Winchester", "VA"},
	{227, 227, "Culpeper", "VA"},
	{228, 229, "Charlottesville", "VA"},
	{230, 232, "Richmond", "VA"},
	{233, 237, "Norfolk", "VA"},
	{238, 239, "Petersburg", "VA"},
	{240, 241, "Roanoke", "VA"},
	{242, 242, "Bristol", "VA"},
	{243, 245, "Lynchburg", "VA"},
	// West Virginia
	{246, 248, "Bluefield", "WV"},
	{249, 249, "Lewisburg", "WV"},
	{250, 253, "Charleston", "WV"},
	{254, 254, "Martinsburg", "WV"},
	{255, 257, "Huntington", "WV"},
	{258, 259, "Beckley", "WV"},
	{260, 260, "Wheeling", "WV"},
	{261, 261, "Parkersburg", "WV"},
	{262, 266, "Clarksburg", "WV"},
	{267, 268, "Romney", "WV"},
	// North Carolina
	{270, 274, "Greensboro", "NC"},
	{275, 276, "Raleigh", "NC"},
	{277, 277, "Durham", "NC"},
	{278, 279, "Rocky Mount", "NC"},
	{280, 282, "Charlotte", "NC"},
	{283, 284, "Fayetteville", "NC"},
	{285, 285, "Goldsboro", "NC"},
	{286, 286, "Hickory", "NC"},
	{287, 289, "Asheville", "NC"},
	// South Carolina
	{290, 292, "Columbia", "SC"},
	{293, 293, "Spartanburg", "SC"},
	{294, 294, "Charleston", "SC"},
	{295, 295, "Florence", "SC"},
	{296, 296, "Greenville", "SC"},
	{297, 297, "Rock Hill", "SC"},
	{298, 298, "Aiken", "SC"},
	{299, 299, "Beaufort", "SC"},
	// Georgia
	{300, 303, "Atlanta", "GA"},
	{304, 305, "Gainesville", "GA"},
	{306, 306, "Athens", "GA"},
	{307, 307, "Dalton", "GA"},
	{308, 309, "Augusta", "GA"},
	{310, 312, "Macon", "GA"},
	{313, 314, "Savannah", "GA"},
	{315, 315, "Waycross", "GA"},
	{316, 316, "Valdosta", "GA"},
	{317, 317, "Albany", "GA"},
	{318, 319, "Columbus", "GA"},
	// Florida
	{320, 322, "Jacksonville", "FL"},
	{323, 323, "Tallahassee", "FL"},
	{324, 324, "Panama City", "FL"},
	{325, 325, "Pensacola", "FL"},
	{326, 326, "Gainesville", "FL"},
	{327, 328, "Orlando", "FL"},
	{329, 329, "Melbourne", "FL"},
	{330, 332, "Miami", "FL"},
	{333, 333, "Fort Lauderdale", "FL"},
	{334, 334, "West Palm Beach", "FL"},
	{335, 336, "Tampa", "FL"},
	{337, 337, "St. Petersburg", "FL"},
	{338, 338, "Lakeland", "FL"},
	{339, 341, "Fort Myers", "FL"},
	{342, 342, "Sarasota", "FL"},
	{344, 344, "Ocala", "FL"},
	{346, 346, "Brooksville", "FL"},
	{347, 347, "Orlando", "FL"},
	{349, 349, "Okeechobee", "FL"},
	// Alabama
	{350, 352, "Birmingham", "AL"},
	{354, 355, "Tuscaloosa", "AL"},
	{356, 358, "Huntsville", "AL"},
	{359, 359, "Gadsden", "AL"},
	{360, 361, "Montgomery", "AL"},
	{362, 362, "Anniston", "AL"},
	{363, 363, "Dothan", "AL"},
	{364, 364, "Evergreen", "AL"},
	{365, 366, "Mobile", "AL"},
	{367, 367, "Selma", "AL"},
	{368, 368, "Auburn", "AL"},
	{369, 369, "Butler", "AL"},
	// Tennessee
	{370, 372, "Nashville", "TN"},
	{373, 374, "Chattanooga", "TN"},
	{376, 376, "Johnson City", "TN"},
	{377, 379, "Knoxville", "TN"},
	{380, 381, "Memphis", "TN"},
	{382, 383, "Jackson", "TN"},
	{384, 384, "Columbia", "TN"},
	{385, 385, "Cookeville", "TN"},
	// Mississippi
	{386, 386, "Southaven", "MS"},
	{387, 387, "Greenville", "MS"},
	{388, 388, "Tupelo", "MS"},
	{389, 389, "Greenwood", "MS"},
	{390, 392, "Jackson", "MS"},
	{393, 393, "Meridian", "MS"},
	{394, 394, "Hattiesburg", "MS"},
	{395, 395, "Gulfport", "MS"},
	{396, 396, "Brookhaven", "MS"},
	{397, 397, "Columbus", "MS"},
	// Georgia (southwest spillover)
	{398, 398, "Albany", "GA"},
	{399, 399, "Atlanta", "GA"},
	// Kentucky
	{400, 402, "Louisville", "KY"},
	{403, 406, "Lexington", "KY"},
	{407, 409, "Corbin", "KY"},
	{410, 410, "Covington", "KY"},
	{411, 412, "Ashland", "KY"},
	{413, 414, "Campton", "KY"},
	{415, 416, "Pikeville", "KY"},
	{417, 418, "Hazard", "KY"},
	{420, 420, "Paducah", "KY"},
	{421, 422, "Bowling Green", "KY"},
	{423, 423, "Owensboro", "KY"},
	{424, 424, "Henderson", "KY"},
	{425, 426, "Somerset", "KY"},
	{427, 427, "Elizabethtown", "KY"},
	// Ohio
	{430, 432, "Columbus", "OH"},
	{433, 433, "Marion", "OH"},
	{434, 436, "Toledo", "OH"},
	{437, 438, "Zanesville", "OH"},
	{439, 439, "Steubenville", "OH"},
	{440, 441, "Cleveland", "OH"},
	{442, 443, "Akron", "OH"},
	{444, 445, "Youngstown", "OH"},
	{446, 447, "Canton", "OH"},
	{448, 449, "Mansfield", "OH"},
	{450, 452, "Cincinnati", "OH"},
	{453, 455, "Dayton", "OH"},
	{456, 456, "Chillicothe", "OH"},
	{457, 457, "Athens", "OH"},
	{458, 458, "Lima", "OH"},
	{459, 459, "Cincinnati", "OH"},
	// Indiana
	{460, 462, "Indianapolis", "IN"},
	{463, 464, "Gary", "IN"},
	{465, 466, "South Bend", "IN"},
	{467, 468, "Fort Wayne", "IN"},
	{469, 469, "Kokomo", "IN"},
	{470, 470, "Aurora", "IN"},
	{471, 471, "New Albany", "IN"},
	{472, 472, "Columbus", "IN"},
	{473, 473, "Muncie", "IN"},
	{474, 474, "Bloomington", "IN"},
	{475, 475, "Bedford", "IN"},
	{476, 477, "Evansville", "IN"},
	{478, 478, "Terre Haute", "IN"},
	{479, 479, "Lafayette", "IN"},
	// Michigan
	{480, 483, "Detroit", "MI"},
	{484, 485, "Flint", "MI"},
	{486, 487, "Saginaw", "MI"},
	{488, 489, "Lansing", "MI"},
	{490, 491, "Kalamazoo", "MI"},
	{492, 492, "Jackson", "MI"},
	{493, 495, "Grand Rapids", "MI"},
	{496, 496, "Traverse City", "MI"},
	{497, 497, "Gaylord", "MI"},
	{498, 499, "Iron Mountain", "MI"},
	// Iowa
	{500, 503, "Des Moines", "IA"},
	{504, 504, "Mason City", "IA"},
	{505, 505, "Fort Dodge", "IA"},
	{506, 507, "Waterloo", "IA"},
	{508, 508, "Creston", "IA"},
	{510, 512, "Sioux City", "IA"},
	{513, 513, "Spencer", "IA"},
	{514, 514, "Carroll", "IA"},
	{515, 515, "Council Bluffs", "IA"},
	{516, 516, "Shenandoah", "IA"},
	{520, 520, "Dubuque", "IA"},
	{521, 521, "Decorah", "IA"},
	{522, 524, "Cedar Rapids", "IA"},
	{525, 525, "Ottumwa", "IA"},
	{526, 526, "Burlington", "IA"},
	{527, 528, "Davenport", "IA"},
	// Wisconsin
	{530, 534, "Milwaukee", "WI"},
	{535, 539, "Madison", "WI"},
	{540, 540, "New Richmond", "WI"},
	{541, 543, "Green Bay", "WI"},
	{544, 545, "Wausau", "WI"},
	{546, 546, "La Crosse", "WI"},
	{547, 547, "Eau Claire", "WI"},
	{548, 548, "Spooner", "WI"},
	{549, 549, "Oshkosh", "WI"},
	// Minnesota
	{550, 551, "St. Paul", "MN"},
	{553, 555, "Minneapolis", "MN"},
	{556, 558, "Duluth", "MN"},
	{559, 559, "Rochester", "MN"},
	{560, 561, "Mankato", "MN"},
	{562, 562, "Willmar", "MN"},
	{563, 563, "St. Cloud", "MN"},
	{564, 564, "Brainerd", "MN"},
	{565, 565, "Detroit Lakes", "MN"},
	{566, 566, "Bemidji", "MN"},
	{567, 567, "Thief River Falls", "MN"},
	// South Dakota
	{570, 571, "Sioux Falls", "SD"},
	{572, 572, "Watertown", "SD"},
	{573, 573, "Mitchell", "SD"},
	{574, 574, "Aberdeen", "SD"},
	{575, 575, "Pierre", "SD"},
	{576, 576, "Mobridge", "SD"},
	{577, 577, "Rapid City", "SD"},
	// North Dakota
	{580, 581, "Fargo", "ND"},
	{582, 582, "Grand Forks", "ND"},
	{583, 583, "Devils Lake", "ND"},
	{584, 584, "Jamestown", "ND"},
	{585, 585, "Bismarck", "ND"},
	{586, 586, "Dickinson", "ND"},
	{587, 587, "Minot", "ND"},
	{588, 588, "Williston", "ND"},
	// Montana
	{590, 591, "Billings", "MT"},
	{592, 592, "Wolf Point", "MT"},
	{593, 593, "Miles City", "MT"},
	{594, 594, "Great Falls", "MT"},
	{595, 595, "Havre", "MT"},
	{596, 596, "Helena", "MT"},
	{597, 597, "Butte", "MT"},
	{598, 598, "Missoula", "MT"},
	{599, 599, "Kalispell", "MT"},
	// Illinois
	{600, 608, "Chicago", "IL"},
	{609, 609, "Kankakee", "IL"},
	{610, 611, "Rockford", "IL"},
	{612, 612, "Rock Island", "IL"},
	{613, 613, "La Salle", "IL"},
	{614, 614, "Galesburg", "IL"},
	{615, 616, "Peoria", "IL"},
	{617, 617, "Bloomington", "IL"},
	{618, 619, "Champaign", "IL"},
	{620, 622, "East St. Louis", "IL"},
	{623, 623, "Quincy", "IL"},
	{624, 624, "Effingham", "IL"},
	{625, 627, "Springfield", "IL"},
	{628, 628, "Centralia", "IL"},
	{629, 629, "Carbondale", "IL"},
	// Missouri
	{630, 633, "St. Louis", "MO"},
	{634, 634, "Hannibal", "MO"},
	{635, 635, "Kirksville", "MO"},
	{636, 636, "Park Hills", "MO"},
	{637, 637, "Cape Girardeau", "MO"},
	{638, 638, "Sikeston", "MO"},
	{639, 639, "Poplar Bluff", "MO"},
	{640, 641, "Kansas City", "MO"},
	{644, 645, "St. Joseph", "MO"},
	{646, 646, "Chillicothe", "MO"},
	{647, 647, "Harrisonville", "MO"},
	{648, 648, "Joplin", "MO"},
	{650, 651, "Jefferson City", "MO"},
	{652, 652, "Columbia", "MO"},
	{653, 653, "Sedalia", "MO"},
	{654, 655, "Rolla", "MO"},
	{656, 658, "Springfield", "MO"},
	// Kansas
	{660, 662, "Kansas City", "KS"},
	{664, 666, "Topeka", "KS"},
	{667, 667, "Fort Scott", "KS"},
	{668, 668, "Topeka", "KS"},
	{669, 669, "Salina", "KS"},
	{670, 672, "Wichita", "KS"},
	{673, 673, "Independence", "KS"},
	{674, 674, "Salina", "KS"},
	{675, 675, "Hutchinson", "KS"},
	{676, 676, "Hays", "KS"},
	{677, 677, "Colby", "KS"},
	{678, 678, "Dodge City", "KS"},
	{679, 679, "Liberal", "KS"},
	// Nebraska
	{680, 681, "Omaha", "NE"},
	{683, 685, "Lincoln", "NE"},
	{686, 686, "Columbus", "NE"},
	{687, 687, "Norfolk", "NE"},
	{688, 688, "Grand Island", "NE"},
	{689, 689, "Hastings", "NE"},
	{690, 690, "McCook", "NE"},
	{691, 691, "North Platte", "NE"},
	{692, 692, "Valentine", "NE"},
	{693, 693, "Alliance", "NE"},
	// Louisiana
	{700, 701, "New Orleans", "LA"},
	{703, 703, "Houma", "LA"},
	{704, 704, "Mandeville", "LA"},
	{705, 705, "Lafayette", "LA"},
	{706, 706, "Lake Charles", "LA"},
	{707, 708, "Baton Rouge", "LA"},
	{710, 711, "Shreveport", "LA"},
	{712, 712, "Monroe", "LA"},
	{713, 714, "Alexandria", "LA"},
	// Arkansas
	{716, 716, "Pine Bluff", "AR"},
	{717, 717, "Camden", "AR"},
	{718, 718, "Texarkana", "AR"},
	{719, 719, "Hot Springs", "AR"},
	{720, 722, "Little Rock", "AR"},
	{723, 723, "West Memphis", "AR"},
	{724, 724, "Jonesboro", "AR"},
	{725, 725, "Batesville", "AR"},
	{726, 726, "Harrison", "AR"},
	{727, 727, "Fayetteville", "AR"},
	{728, 728, "Russellville", "AR"},
	{729, 729, "Fort Smith", "AR"},
	// Oklahoma
	{730, 731, "Oklahoma City", "OK"},
	{734, 734, "Ardmore", "OK"},
	{735, 735, "Lawton", "OK"},
	{736, 736, "Clinton", "OK"},
	{737, 737, "Enid", "OK"},
	{738, 738, "Woodward", "OK"},
	{739, 739, "Guymon", "OK"},
	{740, 741, "Tulsa", "OK"},
	{743, 743, "Tulsa", "OK"},
	{744, 744, "Muskogee", "OK"},
	{745, 745, "McAlester", "OK"},
	{746, 746, "Ponca City", "OK"},
	{747, 747, "Durant", "OK"},
	{748, 748, "Shawnee", "OK"},
	{749, 749, "Poteau", "OK"},
	// Texas
	{750, 754, "Dallas", "TX"},
	{755, 755, "Texarkana", "TX"},
	{756, 759, "Tyler", "TX"},
	{760, 764, "Fort Worth", "TX"},
	{765, 767, "Waco", "TX"},
	{768, 768, "Brownwood", "TX"},
	{769, 769, "San Angelo", "TX"},
	{770, 775, "Houston", "TX"},
	{776, 777, "Beaumont", "TX"},
	{778, 778, "Bryan", "TX"},
	{779, 779, "Victoria", "TX"},
	{780, 782, "San Antonio", "TX"},
	{783, 784, "Corpus Christi", "TX"},
	{785, 785, "McAllen", "TX"},
	{786, 787, "Austin", "TX"},
	{788, 788, "Del Rio", "TX"},
	{789, 789, "Austin", "TX"},
	{790, 791, "Amarillo", "TX"},
	{792, 792, "Childress", "TX"},
	{793, 794, "Lubbock", "TX"},
	{795, 796, "Abilene", "TX"},
	{797, 797, "Midland", "TX"},
	{798, 799, "El Paso", "TX"},
	// Colorado
	{800, 802, "Denver", "CO"},
	{803, 803, "Boulder", "CO"},
	{804, 804, "Golden", "CO"},
	{805, 805, "Longmont", "CO"},
	{806, 806, "Brighton", "CO"},
	{807, 807, "Fort Morgan", "CO"},
	{808, 809, "Colorado Springs", "CO"},
	{810, 810, "Pueblo", "CO"},
	{811, 811, "Alamosa", "CO"},
	{812, 812, "Salida", "CO"},
	{813, 813, "Durango", "CO"},
	{814, 815, "Grand Junction", "CO"},
	{816, 816, "Glenwood Springs", "CO"},
	// Wyoming
	{820, 821, "Cheyenne", "WY"},
	{822, 822, "Wheatland", "WY"},
	{823, 823, "Rawlins", "WY"},
	{824, 824, "Worland", "WY"},
	{825, 825, "Riverton", "WY"},
	{826, 826, "Casper", "WY"},
	{827, 827, "Gillette", "WY"},
	{828, 828, "Sheridan", "WY"},
	{829, 831, "Rock Springs", "WY"},
	// Idaho
	{832, 832, "Pocatello", "ID"},
	{833, 833, "Twin Falls", "ID"},
	{834, 834, "Idaho Falls", "ID"},
	{835, 835, "Lewiston", "ID"},
	{836, 837, "Boise", "ID"},
	{838, 838, "Coeur d'Alene", "ID"},
	// Utah
	{840, 841, "Salt Lake City", "UT"},
	{843, 844, "Ogden", "UT"},
	{845, 845, "Price", "UT"},
	{846, 847, "Provo", "UT"},
	// Arizona
	{850, 853, "Phoenix", "AZ"},
	{855, 855, "Globe", "AZ"},
	{856, 857, "Tucson", "AZ"},
	{859, 859, "Show Low", "AZ"},
	{860, 860, "Flagstaff", "AZ"},
	{863, 863, "Prescott", "AZ"},
	{864, 864, "Kingman", "AZ"},
	// New Mexico
	{865, 865, "Gallup", "NM"},
	{870, 871, "Albuquerque", "NM"},
	{873, 873, "Gallup", "NM"},
	{874, 874, "Farmington", "NM"},
	{875, 875, "Santa Fe", "NM"},
	{877, 877, "Las Vegas", "NM"},
	{878, 878, "Socorro", "NM"},
	{879, 879, "Truth or Consequences", "NM"},
	{880, 880, "Las Cruces", "NM"},
	{881, 881, "Clovis", "NM"},
	{882, 882, "Roswell", "NM"},
	{883, 883, "Alamogordo", "NM"},
	{884, 884, "Tucumcari", "NM"},
	// Nevada
	{889, 891, "Las Vegas", "NV"},
	{893, 893, "Ely", "NV"},
	{894, 895, "Reno", "NV"},
	{897, 897, "Carson City", "NV"},
	{898, 898, "Elko", "NV"},
	// California
	{900, 901, "Los Angeles", "CA"},
	{902, 902, "Beverly Hills", "CA"},
	{903, 903, "Inglewood", "CA"},
	{904, 904, "Santa Monica", "CA"},
	{905, 905, "Torrance", "CA"},
	{906, 908, "Long Beach", "CA"},
	{910, 912, "Pasadena", "CA"},
	{913, 916, "Van Nuys", "CA"},
	{917, 918, "City of Industry", "CA"},
	{919, 921, "San Diego", "CA"},
	{922, 922, "Indio", "CA"},
	{923, 924, "San Bernardino", "CA"},
	{925, 925, "Riverside", "CA"},
	{926, 927, "Santa Ana", "CA"},
	{928, 928, "Anaheim", "CA"},
	{930, 930, "Oxnard", "CA"},
	{931, 931, "Santa Barbara", "CA"},
	{932, 933, "Bakersfield", "CA"},
	{934, 934, "Santa Barbara", "CA"},
	{935, 935, "Mojave", "CA"},
	{936, 938, "Fresno", "CA"},
	{939, 939, "Salinas", "CA"},
	{940, 941, "San Francisco", "CA"},
	{942, 942, "Sacramento", "CA"},
	{943, 943, "Palo Alto", "CA"},
	{944, 944, "San Mateo", "CA"},
	{945, 946, "Oakland", "CA"},
	{947, 947, "Berkeley", "CA"},
	{948, 948, "Richmond", "CA"},
	{949, 949, "San Rafael", "CA"},
	{950, 951, "San Jose", "CA"},
	{952, 952, "Stockton", "CA"},
	{953, 953, "Modesto", "CA"},
	{954, 954, "Santa Rosa", "CA"},
	{955, 955, "Eureka", "CA"},
	{956, 958, "Sacramento", "CA"},
	{959, 959, "Marysville", "CA"},
	{960, 960, "Redding", "CA"},
	{961, 961, "Truckee", "CA"},
	// Hawaii
	{967, 968, "Honolulu", "HI"},
	// Oregon
	{970, 972, "Portland", "OR"},
	{973, 973, "Salem", "OR"},
	{974, 974, "Eugene", "OR"},
	{975, 975, "Medford", "OR"},
	{976, 976, "Klamath Falls", "OR"},
	{977, 977, "Bend", "OR"},
	{978, 979, "Pendleton", "OR"},
	// Washington
	{980, 982, "Seattle", "WA"},
	{983, 984, "Tacoma", "WA"},
	{985, 985, "Olympia", "WA"},
	{986, 986, "Vancouver", "WA"},
	{988, 988, "Wenatchee", "WA"},
	{989, 989, "Yakima", "WA"},
	{990, 992, "Spokane", "WA"},
	{993, 993, "Pasco", "WA"},
	{994, 994, "Clarkston", "WA"},
	// Alaska
	{995, 996, "Anchorage", "AK"},
	{997, 997, "Fairbanks", "AK"},
	{998, 998, "Juneau", "AK"},
	{999, 999, "Ketchikan", "AK"},
}

var prefixTable map[string]Location

func init() {
	prefixTable = make(map[string]Location, 1000)
	for _, r := range prefixRanges {
		for p := r.lo; p <= r.hi; p++ {
			prefixTable[fmt.Sprintf("%03d", p)] = Location{City: r.city, State: r.state}
		}
	}
}
