package catalog

import "strings"

// District is a selectable area inside a city.
type District struct {
	Name  string `json:"name"`
	Label string `json:"label"`
	Zip   string `json:"zip"`
}

// City is a top-level administrative area with its districts.
type City struct {
	Name      string     `json:"name"`
	Label     string     `json:"label"`
	Districts []District `json:"districts"`
}

func d(name, label, zip string) District {
	return District{Name: name, Label: label, Zip: zip}
}

var taiwanLocations = []City{
	{Name: "Taipei City", Label: "臺北市", Districts: []District{
		d("Zhongzheng District", "中正區", "100"), d("Datong District", "大同區", "103"),
		d("Zhongshan District", "中山區", "104"), d("Songshan District", "松山區", "105"),
		d("Daan District", "大安區", "106"), d("Wanhua District", "萬華區", "108"),
		d("Xinyi District", "信義區", "110"), d("Shilin District", "士林區", "111"),
		d("Beitou District", "北投區", "112"), d("Neihu District", "內湖區", "114"),
		d("Nangang District", "南港區", "115"), d("Wenshan District", "文山區", "116"),
	}},
	{Name: "New Taipei City", Label: "新北市", Districts: []District{
		d("Wanli District", "萬里區", "207"), d("Jinshan District", "金山區", "208"),
		d("Banqiao District", "板橋區", "220"), d("Xizhi District", "汐止區", "221"),
		d("Shenkeng District", "深坑區", "222"), d("Shiding District", "石碇區", "223"),
		d("Ruifang District", "瑞芳區", "224"), d("Pingxi District", "平溪區", "226"),
		d("Shuangxi District", "雙溪區", "227"), d("Gongliao District", "貢寮區", "228"),
		d("Xindian District", "新店區", "231"), d("Pinglin District", "坪林區", "232"),
		d("Wulai District", "烏來區", "233"), d("Yonghe District", "永和區", "234"),
		d("Zhonghe District", "中和區", "235"), d("Tucheng District", "土城區", "236"),
		d("Sanxia District", "三峽區", "237"), d("Shulin District", "樹林區", "238"),
		d("Yingge District", "鶯歌區", "239"), d("Sanchong District", "三重區", "241"),
		d("Xinzhuang District", "新莊區", "242"), d("Taishan District", "泰山區", "243"),
		d("Linkou District", "林口區", "244"), d("Luzhou District", "蘆洲區", "247"),
		d("Wugu District", "五股區", "248"), d("Bali District", "八里區", "249"),
		d("Tamsui District", "淡水區", "251"), d("Sanzhi District", "三芝區", "252"),
		d("Shimen District", "石門區", "253"),
	}},
	{Name: "Keelung City", Label: "基隆市", Districts: []District{
		d("Ren'ai District", "仁愛區", "200"), d("Xinyi District", "信義區", "201"),
		d("Zhongzheng District", "中正區", "202"), d("Zhongshan District", "中山區", "203"),
		d("Anle District", "安樂區", "204"), d("Nuannuan District", "暖暖區", "205"),
		d("Qidu District", "七堵區", "206"),
	}},
	{Name: "Taoyuan City", Label: "桃園市", Districts: []District{
		d("Zhongli District", "中壢區", "320"), d("Pingzhen District", "平鎮區", "324"),
		d("Longtan District", "龍潭區", "325"), d("Yangmei District", "楊梅區", "326"),
		d("Xinwu District", "新屋區", "327"), d("Guanyin District", "觀音區", "328"),
		d("Taoyuan District", "桃園區", "330"), d("Guishan District", "龜山區", "333"),
		d("Bade District", "八德區", "334"), d("Daxi District", "大溪區", "335"),
		d("Fuxing District", "復興區", "336"), d("Dayuan District", "大園區", "337"),
		d("Luzhu District", "蘆竹區", "338"),
	}},
	{Name: "Hsinchu City", Label: "新竹市", Districts: []District{
		d("East District", "東區", "300"), d("North District", "北區", "300"),
		d("Xiangshan District", "香山區", "300"),
	}},
	{Name: "Hsinchu County", Label: "新竹縣", Districts: []District{
		d("Zhubei City", "竹北市", "302"), d("Hukou Township", "湖口鄉", "303"),
		d("Xinfeng Township", "新豐鄉", "304"), d("Xinpu Township", "新埔鎮", "305"),
		d("Guanxi Township", "關西鎮", "306"), d("Qionglin Township", "芎林鄉", "307"),
		d("Zhudong Township", "竹東鎮", "310"), d("Beipu Township", "北埔鄉", "314"),
	}},
	{Name: "Miaoli County", Label: "苗栗縣", Districts: []District{
		d("Zhunan Township", "竹南鎮", "350"), d("Toufen City", "頭份市", "351"),
		d("Tongxiao Township", "通霄鎮", "357"), d("Yuanli Township", "苑裡鎮", "358"),
		d("Miaoli City", "苗栗市", "360"), d("Sanyi Township", "三義鄉", "367"),
	}},
	{Name: "Taichung City", Label: "臺中市", Districts: []District{
		d("Central District", "中區", "400"), d("East District", "東區", "401"),
		d("South District", "南區", "402"), d("West District", "西區", "403"),
		d("North District", "北區", "404"), d("Beitun District", "北屯區", "406"),
		d("Xitun District", "西屯區", "407"), d("Nantun District", "南屯區", "408"),
		d("Taiping District", "太平區", "411"), d("Dali District", "大里區", "412"),
		d("Wufeng District", "霧峰區", "413"), d("Wuri District", "烏日區", "414"),
		d("Fengyuan District", "豐原區", "420"), d("Houli District", "后里區", "421"),
		d("Shigang District", "石岡區", "422"), d("Dongshi District", "東勢區", "423"),
		d("Heping District", "和平區", "424"), d("Xinshe District", "新社區", "426"),
		d("Tanzi District", "潭子區", "427"), d("Daya District", "大雅區", "428"),
		d("Shengang District", "神岡區", "429"), d("Dadu District", "大肚區", "432"),
		d("Shalu District", "沙鹿區", "433"), d("Longjing District", "龍井區", "434"),
		d("Wuqi District", "梧棲區", "435"), d("Qingshui District", "清水區", "436"),
		d("Dajia District", "大甲區", "437"), d("Waipu District", "外埔區", "438"),
		d("Da'an District", "大安區", "439"),
	}},
	{Name: "Changhua County", Label: "彰化縣", Districts: []District{
		d("Changhua City", "彰化市", "500"), d("Lukang Township", "鹿港鎮", "505"),
		d("Hemei Township", "和美鎮", "508"), d("Yuanlin City", "員林市", "510"),
		d("Beidou Township", "北斗鎮", "521"),
	}},
	{Name: "Nantou County", Label: "南投縣", Districts: []District{
		d("Nantou City", "南投市", "540"), d("Caotun Township", "草屯鎮", "542"),
		d("Puli Township", "埔里鎮", "545"), d("Jiji Township", "集集鎮", "552"),
		d("Yuchi Township", "魚池鄉", "555"), d("Zhushan Township", "竹山鎮", "557"),
	}},
	{Name: "Yunlin County", Label: "雲林縣", Districts: []District{
		d("Dounan Township", "斗南鎮", "630"), d("Huwei Township", "虎尾鎮", "632"),
		d("Douliu City", "斗六市", "640"), d("Xiluo Township", "西螺鎮", "648"),
		d("Beigang Township", "北港鎮", "651"),
	}},
	{Name: "Chiayi City", Label: "嘉義市", Districts: []District{
		d("East District", "東區", "600"), d("West District", "西區", "600"),
	}},
	{Name: "Chiayi County", Label: "嘉義縣", Districts: []District{
		d("Alishan Township", "阿里山鄉", "605"), d("Taibao City", "太保市", "612"),
		d("Puzi City", "朴子市", "613"), d("Minxiong Township", "民雄鄉", "621"),
		d("Budai Township", "布袋鎮", "625"),
	}},
	{Name: "Tainan City", Label: "臺南市", Districts: []District{
		d("West Central District", "中西區", "700"), d("East District", "東區", "701"),
		d("South District", "南區", "702"), d("North District", "北區", "704"),
		d("Anping District", "安平區", "708"), d("Annan District", "安南區", "709"),
		d("Yongkang District", "永康區", "710"), d("Guiren District", "歸仁區", "711"),
		d("Xinhua District", "新化區", "712"), d("Rende District", "仁德區", "717"),
		d("Madou District", "麻豆區", "721"), d("Jiali District", "佳里區", "722"),
		d("Xinying District", "新營區", "730"), d("Baihe District", "白河區", "732"),
		d("Yanshui District", "鹽水區", "737"), d("Shanhua District", "善化區", "741"),
	}},
	{Name: "Kaohsiung City", Label: "高雄市", Districts: []District{
		d("Xinxing District", "新興區", "800"), d("Qianjin District", "前金區", "801"),
		d("Lingya District", "苓雅區", "802"), d("Yancheng District", "鹽埕區", "803"),
		d("Gushan District", "鼓山區", "804"), d("Qijin District", "旗津區", "805"),
		d("Qianzhen District", "前鎮區", "806"), d("Sanmin District", "三民區", "807"),
		d("Nanzi District", "楠梓區", "811"), d("Xiaogang District", "小港區", "812"),
		d("Zuoying District", "左營區", "813"), d("Renwu District", "仁武區", "814"),
		d("Gangshan District", "岡山區", "820"), d("Fengshan District", "鳳山區", "830"),
		d("Qishan District", "旗山區", "842"), d("Meinong District", "美濃區", "843"),
	}},
	{Name: "Pingtung County", Label: "屏東縣", Districts: []District{
		d("Pingtung City", "屏東市", "900"), d("Chaozhou Township", "潮州鎮", "920"),
		d("Donggang Township", "東港鎮", "928"), d("Liuqiu Township", "琉球鄉", "929"),
		d("Checheng Township", "車城鄉", "944"), d("Hengchun Township", "恆春鎮", "946"),
	}},
	{Name: "Yilan County", Label: "宜蘭縣", Districts: []District{
		d("Yilan City", "宜蘭市", "260"), d("Toucheng Township", "頭城鎮", "261"),
		d("Jiaoxi Township", "礁溪鄉", "262"), d("Zhuangwei Township", "壯圍鄉", "263"),
		d("Yuanshan Township", "員山鄉", "264"), d("Luodong Township", "羅東鎮", "265"),
		d("Sanxing Township", "三星鄉", "266"), d("Wujie Township", "五結鄉", "268"),
		d("Dongshan Township", "冬山鄉", "269"), d("Su'ao Township", "蘇澳鎮", "270"),
	}},
	{Name: "Hualien County", Label: "花蓮縣", Districts: []District{
		d("Hualien City", "花蓮市", "970"), d("Xincheng Township", "新城鄉", "971"),
		d("Ji'an Township", "吉安鄉", "973"), d("Shoufeng Township", "壽豐鄉", "974"),
		d("Fenglin Township", "鳳林鎮", "975"), d("Guangfu Township", "光復鄉", "976"),
		d("Ruisui Township", "瑞穗鄉", "978"), d("Yuli Township", "玉里鎮", "981"),
	}},
	{Name: "Taitung County", Label: "臺東縣", Districts: []District{
		d("Taitung City", "臺東市", "950"), d("Green Island Township", "綠島鄉", "951"),
		d("Lanyu Township", "蘭嶼鄉", "952"), d("Luye Township", "鹿野鄉", "955"),
		d("Guanshan Township", "關山鎮", "956"), d("Chishang Township", "池上鄉", "958"),
	}},
	{Name: "Penghu County", Label: "澎湖縣", Districts: []District{
		d("Magong City", "馬公市", "880"), d("Xiyu Township", "西嶼鄉", "881"),
		d("Baisha Township", "白沙鄉", "884"), d("Huxi Township", "湖西鄉", "885"),
	}},
	{Name: "Kinmen County", Label: "金門縣", Districts: []District{
		d("Jinsha Township", "金沙鎮", "890"), d("Jinhu Township", "金湖鎮", "891"),
		d("Jinning Township", "金寧鄉", "892"), d("Jincheng Township", "金城鎮", "893"),
		d("Lieyu Township", "烈嶼鄉", "894"),
	}},
	{Name: "Lienchiang County", Label: "連江縣", Districts: []District{
		d("Nangan Township", "南竿鄉", "209"), d("Beigan Township", "北竿鄉", "210"),
		d("Juguang Township", "莒光鄉", "211"), d("Dongyin Township", "東引鄉", "212"),
	}},
}

// Cities returns the fixed location table. Callers must not modify it.
func Cities() []City {
	return taiwanLocations
}

// FindCity looks up a city by English name or Chinese label.
func FindCity(name string) (City, bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		return City{}, false
	}
	for _, city := range taiwanLocations {
		if strings.EqualFold(city.Name, name) || city.Label == name {
			return city, true
		}
	}
	return City{}, false
}

// FindDistrict looks up a district within the named city.
func FindDistrict(cityName, districtName string) (City, District, bool) {
	city, ok := FindCity(cityName)
	if !ok {
		return City{}, District{}, false
	}
	districtName = strings.TrimSpace(districtName)
	for _, district := range city.Districts {
		if strings.EqualFold(district.Name, districtName) || district.Label == districtName {
			return city, district, true
		}
	}
	return city, District{}, false
}
