package countryname

type country struct {
	name     string
	official string
	alpha2   string
	alpha3   string
	aliases  []string
}

func c(name, official, alpha2, alpha3 string, aliases ...string) country {
	return country{name: name, official: official, alpha2: alpha2, alpha3: alpha3, aliases: aliases}
}

// countries lists canonical short names with their official names, ISO 3166
// codes and the spellings seen in climate datasets and Natural Earth layers.
var countries = []country{
	c("Afghanistan", "Islamic Republic of Afghanistan", "AF", "AFG"),
	c("Aland Islands", "Aland Islands", "AX", "ALA", "Åland"),
	c("Albania", "Republic of Albania", "AL", "ALB"),
	c("Algeria", "People's Democratic Republic of Algeria", "DZ", "DZA"),
	c("American Samoa", "American Samoa", "AS", "ASM"),
	c("Andorra", "Principality of Andorra", "AD", "AND"),
	c("Angola", "Republic of Angola", "AO", "AGO"),
	c("Anguilla", "Anguilla", "AI", "AIA"),
	c("Antarctica", "Antarctica", "AQ", "ATA"),
	c("Antigua and Barbuda", "Antigua and Barbuda", "AG", "ATG", "Antigua & Barbuda", "Antigua and Barb."),
	c("Argentina", "Argentine Republic", "AR", "ARG"),
	c("Armenia", "Republic of Armenia", "AM", "ARM"),
	c("Aruba", "Aruba", "AW", "ABW"),
	c("Australia", "Commonwealth of Australia", "AU", "AUS"),
	c("Austria", "Republic of Austria", "AT", "AUT"),
	c("Azerbaijan", "Republic of Azerbaijan", "AZ", "AZE"),
	c("Bahamas", "Commonwealth of the Bahamas", "BS", "BHS", "The Bahamas", "Bahamas, The"),
	c("Bahrain", "Kingdom of Bahrain", "BH", "BHR"),
	c("Bangladesh", "People's Republic of Bangladesh", "BD", "BGD"),
	c("Barbados", "Barbados", "BB", "BRB"),
	c("Belarus", "Republic of Belarus", "BY", "BLR", "Byelorussia"),
	c("Belgium", "Kingdom of Belgium", "BE", "BEL"),
	c("Belize", "Belize", "BZ", "BLZ"),
	c("Benin", "Republic of Benin", "BJ", "BEN", "Dahomey"),
	c("Bermuda", "Bermuda", "BM", "BMU"),
	c("Bhutan", "Kingdom of Bhutan", "BT", "BTN"),
	c("Bolivia", "Plurinational State of Bolivia", "BO", "BOL", "Bolivia (Plurinational State of)"),
	c("Bosnia and Herzegovina", "Bosnia and Herzegovina", "BA", "BIH", "Bosnia & Herzegovina", "Bosnia and Herz.", "Bosnia"),
	c("Botswana", "Republic of Botswana", "BW", "BWA"),
	c("Brazil", "Federative Republic of Brazil", "BR", "BRA", "Brasil"),
	c("British Virgin Islands", "Virgin Islands, British", "VG", "VGB", "British Virgin Is."),
	c("Brunei", "Brunei Darussalam", "BN", "BRN"),
	c("Bulgaria", "Republic of Bulgaria", "BG", "BGR"),
	c("Burkina Faso", "Burkina Faso", "BF", "BFA", "Upper Volta"),
	c("Burundi", "Republic of Burundi", "BI", "BDI"),
	c("Cambodia", "Kingdom of Cambodia", "KH", "KHM", "Kampuchea"),
	c("Cameroon", "Republic of Cameroon", "CM", "CMR"),
	c("Canada", "Canada", "CA", "CAN"),
	c("Cape Verde", "Republic of Cabo Verde", "CV", "CPV", "Cabo Verde"),
	c("Cayman Islands", "Cayman Islands", "KY", "CYM", "Cayman Is."),
	c("Central African Republic", "Central African Republic", "CF", "CAF", "Central African Rep.", "CAR"),
	c("Chad", "Republic of Chad", "TD", "TCD"),
	c("Chile", "Republic of Chile", "CL", "CHL"),
	c("China", "People's Republic of China", "CN", "CHN", "PRC", "Mainland China"),
	c("Colombia", "Republic of Colombia", "CO", "COL"),
	c("Comoros", "Union of the Comoros", "KM", "COM"),
	c("Congo Republic", "Republic of the Congo", "CG", "COG", "Congo", "Congo-Brazzaville", "Congo, Rep.", "Republic of Congo"),
	c("Cook Islands", "Cook Islands", "CK", "COK", "Cook Is."),
	c("Costa Rica", "Republic of Costa Rica", "CR", "CRI"),
	c("Cote d'Ivoire", "Republic of Cote d'Ivoire", "CI", "CIV", "Ivory Coast", "Côte d'Ivoire"),
	c("Croatia", "Republic of Croatia", "HR", "HRV", "Hrvatska"),
	c("Cuba", "Republic of Cuba", "CU", "CUB"),
	c("Curacao", "Country of Curacao", "CW", "CUW", "Curaçao"),
	c("Cyprus", "Republic of Cyprus", "CY", "CYP"),
	c("Czech Republic", "Czech Republic", "CZ", "CZE", "Czechia"),
	c("DR Congo", "Democratic Republic of the Congo", "CD", "COD", "Dem. Rep. Congo", "Congo, Dem. Rep.", "Congo-Kinshasa", "DRC", "Zaire", "Congo (Democratic Republic of the)"),
	c("Denmark", "Kingdom of Denmark", "DK", "DNK"),
	c("Djibouti", "Republic of Djibouti", "DJ", "DJI"),
	c("Dominica", "Commonwealth of Dominica", "DM", "DMA"),
	c("Dominican Republic", "Dominican Republic", "DO", "DOM", "Dominican Rep."),
	c("Ecuador", "Republic of Ecuador", "EC", "ECU"),
	c("Egypt", "Arab Republic of Egypt", "EG", "EGY", "Egypt, Arab Rep."),
	c("El Salvador", "Republic of El Salvador", "SV", "SLV"),
	c("Equatorial Guinea", "Republic of Equatorial Guinea", "GQ", "GNQ", "Eq. Guinea"),
	c("Eritrea", "State of Eritrea", "ER", "ERI"),
	c("Estonia", "Republic of Estonia", "EE", "EST"),
	c("Eswatini", "Kingdom of Eswatini", "SZ", "SWZ", "Swaziland", "eSwatini"),
	c("Ethiopia", "Federal Democratic Republic of Ethiopia", "ET", "ETH"),
	c("Falkland Islands", "Falkland Islands (Malvinas)", "FK", "FLK", "Falkland Is.", "Malvinas"),
	c("Faroe Islands", "Faroe Islands", "FO", "FRO", "Faeroe Is.", "Faroe Is."),
	c("Fiji", "Republic of Fiji", "FJ", "FJI"),
	c("Finland", "Republic of Finland", "FI", "FIN"),
	c("France", "French Republic", "FR", "FRA"),
	c("French Guiana", "French Guiana", "GF", "GUF"),
	c("French Polynesia", "French Polynesia", "PF", "PYF", "Fr. Polynesia"),
	c("French Southern Territories", "French Southern Territories", "TF", "ATF", "Fr. S. Antarctic Lands", "French Southern and Antarctic Lands"),
	c("Gabon", "Gabonese Republic", "GA", "GAB"),
	c("Gambia", "Republic of The Gambia", "GM", "GMB", "The Gambia", "Gambia, The"),
	c("Georgia", "Georgia", "GE", "GEO"),
	c("Germany", "Federal Republic of Germany", "DE", "DEU", "Deutschland"),
	c("Ghana", "Republic of Ghana", "GH", "GHA"),
	c("Gibraltar", "Gibraltar", "GI", "GIB"),
	c("Greece", "Hellenic Republic", "GR", "GRC", "Hellas"),
	c("Greenland", "Greenland", "GL", "GRL"),
	c("Grenada", "Grenada", "GD", "GRD"),
	c("Guadeloupe", "Guadeloupe", "GP", "GLP"),
	c("Guam", "Guam", "GU", "GUM"),
	c("Guatemala", "Republic of Guatemala", "GT", "GTM"),
	c("Guernsey", "Bailiwick of Guernsey", "GG", "GGY"),
	c("Guinea", "Republic of Guinea", "GN", "GIN", "Guinea-Conakry"),
	c("Guinea-Bissau", "Republic of Guinea-Bissau", "GW", "GNB"),
	c("Guyana", "Co-operative Republic of Guyana", "GY", "GUY"),
	c("Haiti", "Republic of Haiti", "HT", "HTI"),
	c("Honduras", "Republic of Honduras", "HN", "HND"),
	c("Hong Kong", "Hong Kong Special Administrative Region of China", "HK", "HKG", "Hong Kong SAR, China", "Hong Kong SAR"),
	c("Hungary", "Hungary", "HU", "HUN"),
	c("Iceland", "Iceland", "IS", "ISL"),
	c("India", "Republic of India", "IN", "IND"),
	c("Indonesia", "Republic of Indonesia", "ID", "IDN"),
	c("Iran", "Islamic Republic of Iran", "IR", "IRN", "Iran, Islamic Rep.", "Iran (Islamic Republic of)", "Persia"),
	c("Iraq", "Republic of Iraq", "IQ", "IRQ"),
	c("Ireland", "Ireland", "IE", "IRL", "Republic of Ireland", "Eire"),
	c("Isle of Man", "Isle of Man", "IM", "IMN"),
	c("Israel", "State of Israel", "IL", "ISR"),
	c("Italy", "Italian Republic", "IT", "ITA", "Italia"),
	c("Jamaica", "Jamaica", "JM", "JAM"),
	c("Japan", "Japan", "JP", "JPN", "Nippon"),
	c("Jersey", "Bailiwick of Jersey", "JE", "JEY"),
	c("Jordan", "Hashemite Kingdom of Jordan", "JO", "JOR"),
	c("Kazakhstan", "Republic of Kazakhstan", "KZ", "KAZ"),
	c("Kenya", "Republic of Kenya", "KE", "KEN"),
	c("Kiribati", "Republic of Kiribati", "KI", "KIR"),
	c("Kosovo", "Republic of Kosovo", "XK", "XKX"),
	c("Kuwait", "State of Kuwait", "KW", "KWT"),
	c("Kyrgyz Republic", "Kyrgyz Republic", "KG", "KGZ", "Kyrgyzstan", "Kirghizia"),
	c("Laos", "Lao People's Democratic Republic", "LA", "LAO", "Lao PDR"),
	c("Latvia", "Republic of Latvia", "LV", "LVA"),
	c("Lebanon", "Lebanese Republic", "LB", "LBN"),
	c("Lesotho", "Kingdom of Lesotho", "LS", "LSO"),
	c("Liberia", "Republic of Liberia", "LR", "LBR"),
	c("Libya", "State of Libya", "LY", "LBY", "Libyan Arab Jamahiriya"),
	c("Liechtenstein", "Principality of Liechtenstein", "LI", "LIE"),
	c("Lithuania", "Republic of Lithuania", "LT", "LTU"),
	c("Luxembourg", "Grand Duchy of Luxembourg", "LU", "LUX"),
	c("Macau", "Macao Special Administrative Region of China", "MO", "MAC", "Macao", "Macao SAR, China"),
	c("Madagascar", "Republic of Madagascar", "MG", "MDG"),
	c("Malawi", "Republic of Malawi", "MW", "MWI"),
	c("Malaysia", "Malaysia", "MY", "MYS"),
	c("Maldives", "Republic of Maldives", "MV", "MDV"),
	c("Mali", "Republic of Mali", "ML", "MLI"),
	c("Malta", "Republic of Malta", "MT", "MLT"),
	c("Marshall Islands", "Republic of the Marshall Islands", "MH", "MHL", "Marshall Is."),
	c("Martinique", "Martinique", "MQ", "MTQ"),
	c("Mauritania", "Islamic Republic of Mauritania", "MR", "MRT"),
	c("Mauritius", "Republic of Mauritius", "MU", "MUS"),
	c("Mayotte", "Department of Mayotte", "YT", "MYT"),
	c("Mexico", "United Mexican States", "MX", "MEX"),
	c("Micronesia", "Federated States of Micronesia", "FM", "FSM", "Micronesia, Fed. Sts.", "Micronesia (Federated States of)"),
	c("Moldova", "Republic of Moldova", "MD", "MDA"),
	c("Monaco", "Principality of Monaco", "MC", "MCO"),
	c("Mongolia", "Mongolia", "MN", "MNG"),
	c("Montenegro", "Montenegro", "ME", "MNE", "Crna Gora"),
	c("Montserrat", "Montserrat", "MS", "MSR"),
	c("Morocco", "Kingdom of Morocco", "MA", "MAR"),
	c("Mozambique", "Republic of Mozambique", "MZ", "MOZ"),
	c("Myanmar", "Republic of the Union of Myanmar", "MM", "MMR", "Burma"),
	c("Namibia", "Republic of Namibia", "NA", "NAM"),
	c("Nauru", "Republic of Nauru", "NR", "NRU"),
	c("Nepal", "Federal Democratic Republic of Nepal", "NP", "NPL"),
	c("Netherlands", "Kingdom of the Netherlands", "NL", "NLD", "The Netherlands", "Holland"),
	c("New Caledonia", "New Caledonia", "NC", "NCL"),
	c("New Zealand", "New Zealand", "NZ", "NZL", "Aotearoa"),
	c("Nicaragua", "Republic of Nicaragua", "NI", "NIC"),
	c("Niger", "Republic of the Niger", "NE", "NER"),
	c("Nigeria", "Federal Republic of Nigeria", "NG", "NGA"),
	c("Niue", "Niue", "NU", "NIU"),
	c("North Korea", "Democratic People's Republic of Korea", "KP", "PRK", "Korea, Dem. People's Rep.", "Korea, North", "Dem. Rep. Korea", "DPRK"),
	c("North Macedonia", "Republic of North Macedonia", "MK", "MKD", "Macedonia", "Macedonia, FYR", "FYROM", "N. Macedonia"),
	c("Northern Mariana Islands", "Commonwealth of the Northern Mariana Islands", "MP", "MNP", "N. Mariana Is."),
	c("Norway", "Kingdom of Norway", "NO", "NOR", "Norge"),
	c("Oman", "Sultanate of Oman", "OM", "OMN"),
	c("Pakistan", "Islamic Republic of Pakistan", "PK", "PAK"),
	c("Palau", "Republic of Palau", "PW", "PLW"),
	c("Palestine", "State of Palestine", "PS", "PSE", "West Bank and Gaza", "Palestinian Territories", "Palestinian Territory, Occupied"),
	c("Panama", "Republic of Panama", "PA", "PAN"),
	c("Papua New Guinea", "Independent State of Papua New Guinea", "PG", "PNG"),
	c("Paraguay", "Republic of Paraguay", "PY", "PRY"),
	c("Peru", "Republic of Peru", "PE", "PER"),
	c("Philippines", "Republic of the Philippines", "PH", "PHL", "The Philippines"),
	c("Pitcairn", "Pitcairn Islands", "PN", "PCN", "Pitcairn Is."),
	c("Poland", "Republic of Poland", "PL", "POL", "Polska"),
	c("Portugal", "Portuguese Republic", "PT", "PRT"),
	c("Puerto Rico", "Commonwealth of Puerto Rico", "PR", "PRI"),
	c("Qatar", "State of Qatar", "QA", "QAT"),
	c("Reunion", "Reunion", "RE", "REU", "Réunion"),
	c("Romania", "Romania", "RO", "ROU", "Roumania"),
	c("Russia", "Russian Federation", "RU", "RUS"),
	c("Rwanda", "Republic of Rwanda", "RW", "RWA"),
	c("Samoa", "Independent State of Samoa", "WS", "WSM", "Western Samoa"),
	c("San Marino", "Republic of San Marino", "SM", "SMR"),
	c("Sao Tome and Principe", "Democratic Republic of Sao Tome and Principe", "ST", "STP", "São Tomé and Príncipe", "Sao Tome & Principe"),
	c("Saudi Arabia", "Kingdom of Saudi Arabia", "SA", "SAU"),
	c("Senegal", "Republic of Senegal", "SN", "SEN"),
	c("Serbia", "Republic of Serbia", "RS", "SRB"),
	c("Seychelles", "Republic of Seychelles", "SC", "SYC"),
	c("Sierra Leone", "Republic of Sierra Leone", "SL", "SLE"),
	c("Singapore", "Republic of Singapore", "SG", "SGP"),
	c("Sint Maarten", "Sint Maarten (Dutch part)", "SX", "SXM"),
	c("Slovakia", "Slovak Republic", "SK", "SVK"),
	c("Slovenia", "Republic of Slovenia", "SI", "SVN"),
	c("Solomon Islands", "Solomon Islands", "SB", "SLB", "Solomon Is."),
	c("Somalia", "Federal Republic of Somalia", "SO", "SOM", "Somaliland"),
	c("South Africa", "Republic of South Africa", "ZA", "ZAF"),
	c("South Korea", "Republic of Korea", "KR", "KOR", "Korea, Rep.", "Korea, South", "Korea"),
	c("South Sudan", "Republic of South Sudan", "SS", "SSD", "S. Sudan"),
	c("Spain", "Kingdom of Spain", "ES", "ESP", "España"),
	c("Sri Lanka", "Democratic Socialist Republic of Sri Lanka", "LK", "LKA", "Ceylon"),
	c("St. Kitts and Nevis", "Federation of Saint Kitts and Nevis", "KN", "KNA", "Saint Kitts and Nevis", "St. Kitts & Nevis"),
	c("St. Lucia", "Saint Lucia", "LC", "LCA", "Saint Lucia"),
	c("St. Vincent and the Grenadines", "Saint Vincent and the Grenadines", "VC", "VCT", "St. Vin. and Gren.", "St. Vincent & Grenadines"),
	c("Sudan", "Republic of the Sudan", "SD", "SDN"),
	c("Suriname", "Republic of Suriname", "SR", "SUR", "Surinam"),
	c("Sweden", "Kingdom of Sweden", "SE", "SWE", "Sverige"),
	c("Switzerland", "Swiss Confederation", "CH", "CHE", "Schweiz", "Suisse"),
	c("Syria", "Syrian Arab Republic", "SY", "SYR"),
	c("Taiwan", "Republic of China (Taiwan)", "TW", "TWN", "Chinese Taipei", "Taiwan, China"),
	c("Tajikistan", "Republic of Tajikistan", "TJ", "TJK"),
	c("Tanzania", "United Republic of Tanzania", "TZ", "TZA"),
	c("Thailand", "Kingdom of Thailand", "TH", "THA", "Siam"),
	c("Timor-Leste", "Democratic Republic of Timor-Leste", "TL", "TLS", "East Timor"),
	c("Togo", "Togolese Republic", "TG", "TGO"),
	c("Tonga", "Kingdom of Tonga", "TO", "TON"),
	c("Trinidad and Tobago", "Republic of Trinidad and Tobago", "TT", "TTO", "Trinidad & Tobago"),
	c("Tunisia", "Republic of Tunisia", "TN", "TUN"),
	c("Turkey", "Republic of Turkiye", "TR", "TUR", "Türkiye", "Turkiye"),
	c("Turkmenistan", "Turkmenistan", "TM", "TKM"),
	c("Turks and Caicos Islands", "Turks and Caicos Islands", "TC", "TCA", "Turks and Caicos Is."),
	c("Tuvalu", "Tuvalu", "TV", "TUV"),
	c("Uganda", "Republic of Uganda", "UG", "UGA"),
	c("Ukraine", "Ukraine", "UA", "UKR"),
	c("United Arab Emirates", "United Arab Emirates", "AE", "ARE", "UAE", "Emirates"),
	c("United Kingdom", "United Kingdom of Great Britain and Northern Ireland", "GB", "GBR", "UK", "Great Britain", "Britain", "England"),
	c("United States", "United States of America", "US", "USA", "United States of America", "U.S.", "U.S.A.", "America"),
	c("United States Virgin Islands", "Virgin Islands of the United States", "VI", "VIR", "U.S. Virgin Is.", "US Virgin Islands"),
	c("Uruguay", "Oriental Republic of Uruguay", "UY", "URY"),
	c("Uzbekistan", "Republic of Uzbekistan", "UZ", "UZB"),
	c("Vanuatu", "Republic of Vanuatu", "VU", "VUT"),
	c("Vatican", "Holy See", "VA", "VAT", "Vatican City", "Holy See (Vatican City State)"),
	c("Venezuela", "Bolivarian Republic of Venezuela", "VE", "VEN", "Venezuela, RB", "Venezuela (Bolivarian Republic of)"),
	c("Vietnam", "Socialist Republic of Viet Nam", "VN", "VNM", "Viet Nam"),
	c("Wallis and Futuna", "Wallis and Futuna Islands", "WF", "WLF", "Wallis and Futuna Is."),
	c("Western Sahara", "Sahrawi Arab Democratic Republic", "EH", "ESH", "W. Sahara"),
	c("Yemen", "Republic of Yemen", "YE", "YEM", "Yemen, Rep."),
	c("Zambia", "Republic of Zambia", "ZM", "ZMB"),
	c("Zimbabwe", "Republic of Zimbabwe", "ZW", "ZWE", "Rhodesia"),
}
