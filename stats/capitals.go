package stats

// capitals maps country names to the coordinates of their capitals.
var capitals = map[string]Coordinates{
	"Andorra":                          {Latitude: 42.5063, Longitude: 1.5218},
	"Albania":                          {Latitude: 41.3275, Longitude: 19.8187},
	"Austria":                          {Latitude: 48.2082, Longitude: 16.3738},
	"Belarus":                          {Latitude: 53.9045, Longitude: 27.5615},
	"Belgium":                          {Latitude: 50.8503, Longitude: 4.3517},
	"Bosnia and Herzegovina":           {Latitude: 43.8564, Longitude: 18.4131},
	"Bulgaria":                         {Latitude: 42.6977, Longitude: 23.3219},
	"Croatia":                          {Latitude: 45.8154, Longitude: 15.9666},
	"Cyprus":                           {Latitude: 35.1856, Longitude: 33.3823},
	"Czech Republic":                   {Latitude: 50.0755, Longitude: 14.4378},
	"Denmark":                          {Latitude: 55.6761, Longitude: 12.5683},
	"Estonia":                          {Latitude: 59.4370, Longitude: 24.7536},
	"Finland":                          {Latitude: 60.1699, Longitude: 24.9384},
	"France":                           {Latitude: 48.8566, Longitude: 2.3522},
	"Germany":                          {Latitude: 52.5200, Longitude: 13.4050},
	"Greece":                           {Latitude: 37.9838, Longitude: 23.7275},
	"Hungary":                          {Latitude: 47.4979, Longitude: 19.0402},
	"Iceland":                          {Latitude: 64.1265, Longitude: -21.8174},
	"Ireland":                          {Latitude: 53.3498, Longitude: -6.2603},
	"Italy":                            {Latitude: 41.9028, Longitude: 12.4964},
	"Kosovo":                           {Latitude: 42.6026, Longitude: 20.9030},
	"Latvia":                           {Latitude: 56.9496, Longitude: 24.1052},
	"Liechtenstein":                    {Latitude: 47.1410, Longitude: 9.5209},
	"Lithuania":                        {Latitude: 54.6872, Longitude: 25.2797},
	"Luxembourg":                       {Latitude: 49.8153, Longitude: 6.1296},
	"Malta":                            {Latitude: 35.8989, Longitude: 14.5146},
	"Moldova":                          {Latitude: 47.0105, Longitude: 28.8638},
	"Monaco":                           {Latitude: 43.7384, Longitude: 7.4246},
	"Montenegro":                       {Latitude: 42.7087, Longitude: 19.3744},
	"Netherlands":                      {Latitude: 52.3676, Longitude: 4.9041},
	"North Macedonia":                  {Latitude: 42.0041, Longitude: 21.4344},
	"Norway":                           {Latitude: 59.9139, Longitude: 10.7522},
	"Poland":                           {Latitude: 52.2370, Longitude: 21.0175},
	"Portugal":                         {Latitude: 38.7223, Longitude: -9.1393},
	"Romania":                          {Latitude: 44.4268, Longitude: 26.1025},
	"Russia":                           {Latitude: 55.7558, Longitude: 37.6173},
	"San Marino":                       {Latitude: 43.9424, Longitude: 12.4578},
	"Serbia":                           {Latitude: 44.7866, Longitude: 20.4489},
	"Slovakia":                         {Latitude: 48.1486, Longitude: 17.1077},
	"Slovenia":                         {Latitude: 46.0569, Longitude: 14.5058},
	"Spain":                            {Latitude: 40.4168, Longitude: -3.7038},
	"Sweden":                           {Latitude: 59.3293, Longitude: 18.0686},
	"Switzerland":                      {Latitude: 47.3769, Longitude: 8.5417},
	"Turkey":                           {Latitude: 41.0082, Longitude: 28.9784},
	"Ukraine":                          {Latitude: 50.4501, Longitude: 30.5234},
	"United Kingdom":                   {Latitude: 51.5074, Longitude: -0.1278},
	"Vatican City":                     {Latitude: 41.9029, Longitude: 12.4534},
	"Afghanistan":                      {Latitude: 34.5553, Longitude: 69.2075},
	"Armenia":                          {Latitude: 40.1872, Longitude: 44.5152},
	"Azerbaijan":                       {Latitude: 40.4093, Longitude: 49.8671},
	"Bahrain":                          {Latitude: 26.0667, Longitude: 50.5577},
	"Bangladesh":                       {Latitude: 23.8103, Longitude: 90.4125},
	"Bhutan":                           {Latitude: 27.4712, Longitude: 89.6386},
	"Brunei":                           {Latitude: 4.9031, Longitude: 114.9398},
	"Cambodia":                         {Latitude: 11.5564, Longitude: 104.9282},
	"China":                            {Latitude: 39.9042, Longitude: 116.4074},
	"Georgia":                          {Latitude: 41.7151, Longitude: 44.8271},
	"India":                            {Latitude: 28.6139, Longitude: 77.2090},
	"Indonesia":                        {Latitude: -6.2088, Longitude: 106.8456},
	"Iran":                             {Latitude: 35.6892, Longitude: 51.3890},
	"Iraq":                             {Latitude: 33.3152, Longitude: 44.3661},
	"Israel":                           {Latitude: 31.7683, Longitude: 35.2137},
	"Japan":                            {Latitude: 35.6895, Longitude: 139.6917},
	"Jordan":                           {Latitude: 31.9522, Longitude: 35.9334},
	"Kazakhstan":                       {Latitude: 43.2220, Longitude: 76.8512},
	"Kuwait":                           {Latitude: 29.3759, Longitude: 47.9774},
	"Kyrgyzstan":                       {Latitude: 41.2044, Longitude: 74.7661},
	"Laos":                             {Latitude: 17.9757, Longitude: 102.6331},
	"Lebanon":                          {Latitude: 33.8547, Longitude: 35.8623},
	"Malaysia":                         {Latitude: 3.1412, Longitude: 101.6865},
	"Maldives":                         {Latitude: 4.1755, Longitude: 73.5093},
	"Mongolia":                         {Latitude: 47.8864, Longitude: 106.9057},
	"Myanmar":                          {Latitude: 16.8661, Longitude: 96.1951},
	"Nepal":                            {Latitude: 27.7172, Longitude: 85.3240},
	"North Korea":                      {Latitude: 39.0392, Longitude: 125.7625},
	"Oman":                             {Latitude: 23.4241, Longitude: 53.8478},
	"Pakistan":                         {Latitude: 33.6844, Longitude: 73.0479},
	"Palestine":                        {Latitude: 31.9522, Longitude: 35.2334},
	"Philippines":                      {Latitude: 14.5995, Longitude: 120.9842},
	"Qatar":                            {Latitude: 25.3548, Longitude: 51.1839},
	"Saudi Arabia":                     {Latitude: 24.7136, Longitude: 46.6753},
	"Singapore":                        {Latitude: 1.3521, Longitude: 103.8198},
	"South Korea":                      {Latitude: 37.5665, Longitude: 126.9780},
	"Sri Lanka":                        {Latitude: 6.9271, Longitude: 79.8612},
	"Syria":                            {Latitude: 33.5138, Longitude: 36.2765},
	"Taiwan":                           {Latitude: 25.0330, Longitude: 121.5654},
	"Tajikistan":                       {Latitude: 38.5737, Longitude: 68.7738},
	"Thailand":                         {Latitude: 13.7563, Longitude: 100.5018},
	"Timor-Leste":                      {Latitude: -8.5569, Longitude: 125.5603},
	"Turkmenistan":                     {Latitude: 37.9601, Longitude: 58.3261},
	"United Arab Emirates":             {Latitude: 25.2048, Longitude: 55.2708},
	"Uzbekistan":                       {Latitude: 41.2995, Longitude: 69.2401},
	"Vietnam":                          {Latitude: 21.0278, Longitude: 105.8342},
	"Yemen":                            {Latitude: 15.3694, Longitude: 44.1910},
	"Algeria":                          {Latitude: 36.7538, Longitude: 3.0588},
	"Angola":                           {Latitude: -8.8389, Longitude: 13.2894},
	"Benin":                            {Latitude: 6.4969, Longitude: 2.6283},
	"Botswana":                         {Latitude: -24.6282, Longitude: 25.9231},
	"Burkina Faso":                     {Latitude: 12.3714, Longitude: -1.5197},
	"Burundi":                          {Latitude: -3.3614, Longitude: 29.3599},
	"Cameroon":                         {Latitude: 3.8480, Longitude: 11.5021},
	"Cape Verde":                       {Latitude: 14.9315, Longitude: -23.5087},
	"Central African Republic":         {Latitude: 4.3947, Longitude: 18.5582},
	"Chad":                             {Latitude: 12.1348, Longitude: 15.0557},
	"Comoros":                          {Latitude: -11.7172, Longitude: 43.2473},
	"Congo":                            {Latitude: -4.2634, Longitude: 15.2429},
	"Democratic Republic of the Congo": {Latitude: -4.4419, Longitude: 15.2663},
	"Djibouti":                         {Latitude: 11.5886, Longitude: 43.1456},
	"Egypt":                            {Latitude: 30.0444, Longitude: 31.2357},
	"Equatorial Guinea":                {Latitude: 3.7523, Longitude: 8.7800},
	"Eritrea":                          {Latitude: 15.3229, Longitude: 38.9251},
	"Eswatini":                         {Latitude: -26.3054, Longitude: 31.1367},
	"Ethiopia":                         {Latitude: 9.0320, Longitude: 38.7420},
	"Gabon":                            {Latitude: 0.4162, Longitude: 9.4673},
	"Gambia":                           {Latitude: 13.4432, Longitude: -15.3101},
	"Ghana":                            {Latitude: 5.6030, Longitude: -0.1870},
	"Guinea":                           {Latitude: 9.5092, Longitude: -13.7122},
	"Guinea-Bissau":                    {Latitude: 11.8817, Longitude: -15.6178},
	"Kenya":                            {Latitude: -1.2921, Longitude: 36.8219},
	"Lesotho":                          {Latitude: -29.3167, Longitude: 27.4833},
	"Liberia":                          {Latitude: 6.3004, Longitude: -10.7969},
	"Libya":                            {Latitude: 32.8872, Longitude: 13.1913},
	"Madagascar":                       {Latitude: -18.8792, Longitude: 47.5079},
	"Malawi":                           {Latitude: -13.9626, Longitude: 33.7741},
	"Mali":                             {Latitude: 12.6392, Longitude: -8.0029},
	"Mauritania":                       {Latitude: 18.0735, Longitude: -15.9582},
	"Mauritius":                        {Latitude: -20.1609, Longitude: 57.5012},
	"Morocco":                          {Latitude: 31.6295, Longitude: -7.9811},
	"Mozambique":                       {Latitude: -25.9692, Longitude: 32.5732},
	"Namibia":                          {Latitude: -22.5609, Longitude: 17.0658},
	"Niger":                            {Latitude: 13.5117, Longitude: 2.1252},
	"Nigeria":                          {Latitude: 9.0765, Longitude: 7.3986},
	"Rwanda":                           {Latitude: -1.9441, Longitude: 30.0619},
	"São Tomé and Príncipe":            {Latitude: 0.1864, Longitude: 6.6131},
	"Senegal":                          {Latitude: 14.7167, Longitude: -17.4571},
	"Seychelles":                       {Latitude: -4.6796, Longitude: 55.4920},
	"Sierra Leone":                     {Latitude: 8.4841, Longitude: -13.2347},
	"Somalia":                          {Latitude: 2.0469, Longitude: 45.3182},
	"South Africa":                     {Latitude: -33.9249, Longitude: 18.4241},
	"South Sudan":                      {Latitude: 4.8594, Longitude: 31.5713},
	"Sudan":                            {Latitude: 15.5007, Longitude: 32.5599},
	"Tanzania":                         {Latitude: -6.7924, Longitude: 39.2083},
	"Togo":                             {Latitude: 6.1725, Longitude: 1.2314},
	"Tunisia":                          {Latitude: 36.8065, Longitude: 10.1815},
	"Uganda":                           {Latitude: 0.3476, Longitude: 32.5825},
	"Zambia":                           {Latitude: -15.3875, Longitude: 28.3228},
	"Zimbabwe":                         {Latitude: -17.8277, Longitude: 31.0534},
	"Antigua and Barbuda":              {Latitude: 17.0608, Longitude: -61.7964},
	"Bahamas":                          {Latitude: 25.0343, Longitude: -77.3963},
	"Barbados":                         {Latitude: 13.1939, Longitude: -59.5432},
	"Belize":                           {Latitude: 17.1899, Longitude: -88.4977},
	"Canada":                           {Latitude: 45.4215, Longitude: -75.6972},
	"Costa Rica":                       {Latitude: 9.9281, Longitude: -84.0907},
	"Cuba":                             {Latitude: 23.1136, Longitude: -82.3666},
	"Dominica":                         {Latitude: 15.3004, Longitude: -61.3872},
	"Dominican Republic":               {Latitude: 18.4861, Longitude: -69.9312},
	"El Salvador":                      {Latitude: 13.6929, Longitude: -89.2182},
	"Grenada":                          {Latitude: 12.0561, Longitude: -61.7488},
	"Guatemala":                        {Latitude: 14.6349, Longitude: -90.5069},
	"Haiti":                            {Latitude: 18.5944, Longitude: -72.3074},
	"Honduras":                         {Latitude: 14.0723, Longitude: -87.1921},
	"Jamaica":                          {Latitude: 18.0469, Longitude: -76.7408},
	"Mexico":                           {Latitude: 19.4326, Longitude: -99.1332},
	"Nicaragua":                        {Latitude: 12.1150, Longitude: -86.2362},
	"Panama":                           {Latitude: 8.9833, Longitude: -79.5167},
	"Saint Kitts and Nevis":            {Latitude: 17.3578, Longitude: -62.7830},
	"Saint Lucia":                      {Latitude: 14.0101, Longitude: -60.9875},
	"Saint Vincent and the Grenadines": {Latitude: 13.1939, Longitude: -61.2225},
	"Trinidad and Tobago":              {Latitude: 10.6918, Longitude: -61.2225},
	"United States":                    {Latitude: 38.9072, Longitude: -77.0369},
	"Argentina":                        {Latitude: -34.6037, Longitude: -58.3816},
	"Bolivia":                          {Latitude: -16.4897, Longitude: -68.1193},
	"Brazil":                           {Latitude: -15.7801, Longitude: -47.9292},
	"Chile":                            {Latitude: -33.4489, Longitude: -70.6693},
	"Colombia":                         {Latitude: 4.5709, Longitude: -74.2973},
	"Ecuador":                          {Latitude: -0.1807, Longitude: -78.4678},
	"Guyana":                           {Latitude: 6.8013, Longitude: -58.1551},
	"Paraguay":                         {Latitude: -25.2637, Longitude: -57.5759},
	"Peru":                             {Latitude: -12.0464, Longitude: -77.0428},
	"Suriname":                         {Latitude: 5.8520, Longitude: -55.2038},
	"Uruguay":                          {Latitude: -34.9011, Longitude: -56.1645},
	"Venezuela":                        {Latitude: 10.4806, Longitude: -66.9036},
	"Australia":                        {Latitude: -35.2809, Longitude: 149.1300},
	"Fiji":                             {Latitude: -18.1416, Longitude: 178.4419},
	"Kiribati":                         {Latitude: 1.3291, Longitude: 172.9791},
	"Marshall Islands":                 {Latitude: 7.0897, Longitude: 171.3809},
	"Micronesia":                       {Latitude: 6.9147, Longitude: 158.1610},
	"Nauru":                            {Latitude: -0.5228, Longitude: 166.9319},
	"New Zealand":                      {Latitude: -41.2865, Longitude: 174.7762},
	"Palau":                            {Latitude: 7.5150, Longitude: 134.5825},
	"Papua New Guinea":                 {Latitude: -9.4438, Longitude: 147.1803},
	"Samoa":                            {Latitude: -13.8507, Longitude: -171.7514},
	"Solomon Islands":                  {Latitude: -9.4456, Longitude: 159.9729},
	"Tonga":                            {Latitude: -21.1393, Longitude: -175.2049},
	"Tuvalu":                           {Latitude: -8.5200, Longitude: 179.1980},
	"Vanuatu":                          {Latitude: -17.7333, Longitude: 168.3273},
}
