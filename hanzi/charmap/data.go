// Copyright (c) 2026 the hanziconv authors
// released under the MIT license

package charmap

import "sync"

// The bundled dataset. Runes at even offsets are Simplified forms, each
// followed by its Traditional counterpart. Order is significant: a
// character that appears in several pairs (e.g. 发/發 and 发/髮) resolves
// to its earliest pair, so the dominant mapping must come first.
const defaultPairData = "" +
	"爱愛碍礙肮骯袄襖坝壩罢罷摆擺败敗颁頒办辦绊絆帮幫绑綁镑鎊谤謗宝寶报報鲍鮑辈輩贝貝" +
	"钡鋇备備惫憊笔筆币幣毕畢毙斃闭閉边邊编編贬貶变變辩辯辫辮标標鳖鱉宾賓滨濱缤繽拨撥" +
	"钵缽驳駁补補财財蚕蠶残殘惭慚惨慘灿燦仓倉苍蒼舱艙厕廁测測侧側层層产產搀攙掺摻馋饞" +
	"缠纏忏懺偿償厂廠畅暢彻徹尘塵陈陳衬襯称稱惩懲迟遲驰馳齿齒炽熾虫蟲筹籌绸綢丑醜础礎" +
	"处處触觸传傳疮瘡闯闖创創锤錘纯純绰綽辞辭词詞赐賜聪聰葱蔥从從丛叢凑湊窜竄错錯达達" +
	"带帶贷貸担擔单單郸鄲胆膽惮憚诞誕弹彈当當挡擋党黨荡蕩档檔导導岛島祷禱盗盜灯燈邓鄧" +
	"敌敵涤滌递遞缔締点點垫墊电電钓釣调調谍諜钉釘顶頂锭錠订訂丢丟东東动動栋棟冻凍独獨" +
	"读讀赌賭镀鍍锻鍛断斷缎緞队隊对對吨噸顿頓钝鈍夺奪堕墮鹅鵝额額讹訛恶惡饿餓儿兒尔爾" +
	"饵餌贰貳发發发髮罚罰阀閥烦煩贩販访訪纺紡飞飛诽誹废廢费費纷紛坟墳奋奮愤憤粪糞丰豐" +
	"风風疯瘋枫楓锋鋒讽諷凤鳳肤膚辐輻抚撫辅輔赋賦复復复複缚縛负負妇婦讣訃该該钙鈣盖蓋" +
	"干乾干幹赶趕秆稈赣贛冈岡刚剛钢鋼纲綱岗崗镐鎬搁擱鸽鴿阁閣铬鉻个個给給龚龔宫宮巩鞏" +
	"贡貢沟溝钩鉤构構购購够夠蛊蠱顾顧剐剮关關观觀馆館惯慣贯貫广廣归歸龟龜闺閨轨軌诡詭" +
	"柜櫃贵貴刽劊辊輥滚滾锅鍋国國过過骇駭韩韓汉漢号號阂閡鹤鶴贺賀横橫轰轟鸿鴻红紅后後" +
	"壶壺护護沪滬户戶哗嘩华華画畫划劃话話怀懷坏壞欢歡环環还還缓緩换換唤喚痪瘓焕煥黄黃" +
	"谎謊挥揮辉輝毁毀贿賄汇匯会會讳諱诲誨绘繪荤葷浑渾伙夥获獲货貨祸禍击擊机機积積鸡雞" +
	"迹跡绩績缉緝极極辑輯级級挤擠几幾蓟薊剂劑济濟计計记記际際继繼纪紀夹夾荚莢颊頰贾賈" +
	"钾鉀价價驾駕歼殲监監坚堅笺箋间間艰艱缄緘茧繭检檢碱鹼拣揀捡撿简簡俭儉减減荐薦槛檻" +
	"鉴鑒践踐贱賤见見键鍵舰艦剑劍饯餞渐漸溅濺涧澗将將浆漿蒋蔣桨槳奖獎讲講酱醬胶膠浇澆" +
	"骄驕娇嬌搅攪铰鉸矫矯侥僥脚腳饺餃缴繳较較轿轎阶階节節洁潔结結诫誡紧緊锦錦仅僅谨謹" +
	"进進晋晉烬燼尽盡劲勁茎莖经經惊驚镜鏡径徑痉痙竞競净淨纠糾旧舊驹駒举舉据據锯鋸惧懼" +
	"剧劇鹃鵑绢絹觉覺决決诀訣绝絕钧鈞军軍骏駿开開凯凱颗顆壳殼课課垦墾恳懇抠摳库庫裤褲" +
	"夸誇块塊侩儈宽寬矿礦旷曠况況亏虧窥窺馈饋溃潰扩擴阔闊蜡蠟腊臘来來莱萊赖賴蓝藍栏欄" +
	"拦攔烂爛滥濫捞撈劳勞涝澇乐樂镭鐳垒壘类類泪淚离離礼禮丽麗厉厲励勵砾礫历歷历曆沥瀝" +
	"隶隸俩倆联聯莲蓮连連镰鐮怜憐涟漣帘簾敛斂脸臉链鏈恋戀炼煉练練粮糧凉涼两兩辆輛谅諒" +
	"疗療辽遼镣鐐猎獵临臨邻鄰鳞鱗赁賃龄齡铃鈴灵靈岭嶺领領馏餾刘劉龙龍聋聾咙嚨笼籠垄壟" +
	"拢攏陇隴楼樓娄婁搂摟篓簍芦蘆卢盧颅顱庐廬炉爐掳擄鲁魯虏虜赂賂禄祿录錄陆陸驴驢吕呂" +
	"铝鋁侣侶屡屢缕縷虑慮滤濾绿綠峦巒挛攣孪孿滦灤乱亂轮輪伦倫仑侖沦淪纶綸论論萝蘿罗羅" +
	"逻邏锣鑼箩籮骡騾骆駱络絡妈媽玛瑪码碼蚂螞马馬骂罵吗嗎买買麦麥卖賣迈邁脉脈瞒瞞馒饅" +
	"蛮蠻满滿谩謾猫貓锚錨铆鉚贸貿么麼没沒镁鎂门門闷悶们們锰錳梦夢谜謎弥彌觅覓绵綿缅緬" +
	"庙廟灭滅悯憫闽閩鸣鳴铭銘谬謬谋謀亩畝钠鈉纳納难難挠撓脑腦恼惱闹鬧馁餒内內拟擬腻膩" +
	"撵攆酿釀鸟鳥聂聶镊鑷镍鎳柠檸狞獰宁寧拧擰泞濘钮鈕纽紐脓膿浓濃农農疟瘧诺諾欧歐鸥鷗" +
	"殴毆呕嘔沤漚盘盤庞龐抛拋赔賠喷噴鹏鵬骗騙飘飄频頻贫貧苹蘋凭憑评評泼潑颇頗扑撲铺鋪" +
	"朴樸谱譜脐臍齐齊骑騎岂豈启啟气氣弃棄讫訖牵牽钎釺铅鉛迁遷签簽谦謙钱錢钳鉗潜潛浅淺" +
	"谴譴堑塹枪槍呛嗆墙牆蔷薔强強抢搶锹鍬桥橋乔喬侨僑翘翹窍竅窃竊钦欽亲親寝寢轻輕氢氫" +
	"倾傾顷頃请請庆慶琼瓊穷窮趋趨区區躯軀驱驅龋齲颧顴权權劝勸却卻鹊鵲确確让讓饶饒扰擾" +
	"绕繞热熱韧韌认認纫紉荣榮绒絨软軟锐銳闰閏润潤洒灑萨薩赛賽伞傘丧喪骚騷扫掃涩澀杀殺" +
	"纱紗筛篩晒曬删刪闪閃陕陝赡贍缮繕伤傷赏賞烧燒绍紹赊賒摄攝慑懾设設绅紳审審婶嬸肾腎" +
	"渗滲声聲绳繩胜勝圣聖师師狮獅湿濕诗詩时時蚀蝕实實识識驶駛势勢适適释釋饰飾视視试試" +
	"寿壽兽獸枢樞输輸书書赎贖属屬术術树樹竖豎数數帅帥闩閂双雙谁誰税稅顺順说說硕碩烁爍" +
	"丝絲饲飼耸聳怂慫颂頌讼訟诵誦擞擻苏蘇诉訴肃肅虽雖随隨绥綏岁歲孙孫损損笋筍缩縮琐瑣" +
	"锁鎖台臺台颱台檯态態摊攤贪貪瘫癱滩灘坛壇谈談叹嘆汤湯烫燙涛濤绦絛讨討腾騰誊謄锑銻" +
	"题題体體屉屜条條贴貼铁鐵厅廳听聽烃烴铜銅统統头頭图圖涂塗团團颓頹蜕蛻脱脫鸵鴕驼駝" +
	"椭橢洼窪袜襪弯彎湾灣顽頑万萬网網韦韋违違围圍为為潍濰维維伟偉伪偽纬緯谓謂卫衛温溫" +
	"闻聞纹紋稳穩问問蜗蝸涡渦窝窩呜嗚钨鎢乌烏诬誣无無芜蕪吴吳坞塢雾霧务務误誤锡錫袭襲" +
	"习習玺璽戏戲细細虾蝦辖轄峡峽侠俠狭狹吓嚇锨鍁鲜鮮纤纖咸鹹贤賢衔銜闲閑显顯险險现現" +
	"献獻县縣馅餡宪憲线線镶鑲乡鄉详詳响響项項萧蕭嚣囂销銷晓曉啸嘯协協挟挾携攜胁脅谐諧" +
	"写寫泻瀉谢謝锌鋅衅釁兴興锈鏽绣繡虚虛嘘噓须須许許叙敘绪緒续續轩軒悬懸选選癣癬绚絢" +
	"学學勋勳询詢寻尋驯馴训訓讯訊逊遜压壓鸦鴉鸭鴨哑啞亚亞讶訝阉閹烟煙盐鹽严嚴颜顏阎閻" +
	"艳艷厌厭砚硯彦彥谚諺验驗鸯鴦杨楊扬揚疡瘍阳陽痒癢养養样樣摇搖尧堯遥遙窑窯谣謠药藥" +
	"爷爺页頁业業叶葉医醫铱銥颐頤遗遺仪儀蚁蟻艺藝亿億忆憶义義议議谊誼译譯异異绎繹荫蔭" +
	"阴陰银銀饮飲隐隱樱櫻鹰鷹应應缨纓莹瑩萤螢营營荧熒蝇蠅赢贏颖穎拥擁佣傭痈癰踊踴优優" +
	"忧憂邮郵铀鈾犹猶诱誘舆輿鱼魚渔漁娱娛与與屿嶼语語狱獄誉譽预預驭馭鸳鴛渊淵辕轅园園" +
	"员員圆圓缘緣远遠愿願约約跃躍钥鑰粤粵云雲郧鄖陨隕运運蕴蘊酝醞晕暈韵韻杂雜灾災载載" +
	"攒攢暂暫赞贊脏臟脏髒凿鑿枣棗责責择擇则則泽澤贼賊赠贈轧軋闸閘铡鍘诈詐斋齋债債毡氈" +
	"盏盞斩斬辗輾崭嶄栈棧战戰绽綻张張涨漲帐帳账賬胀脹赵趙蛰蟄辙轍这這贞貞针針侦偵诊診" +
	"镇鎮阵陣郑鄭证證帧幀铮錚筝箏织織职職执執纸紙挚摯掷擲帜幟质質滞滯钟鐘钟鍾终終种種" +
	"肿腫众眾诌謅轴軸皱皺昼晝骤驟猪豬诸諸诛誅烛燭瞩矚嘱囑贮貯铸鑄筑築驻駐专專砖磚转轉" +
	"赚賺桩樁庄莊装裝妆妝壮壯状狀锥錐赘贅坠墜缀綴谆諄浊濁资資渍漬踪蹤综綜总總纵縱邹鄒" +
	"诅詛组組钻鑽郄郤争爭叠疊尝嘗尴尷雏雛雳靂鲤鯉鲨鯊鲸鯨鳄鱷鹉鵡鹭鷺鹦鸚麸麩谭譚谗讒" +
	"赈賑铲鏟铐銬驿驛颠顛颤顫颈頸颚顎馄餛饼餅饭飯饱飽饥飢馍饃馑饉馐饈骁驍骋騁骅驊骊驪" +
	"鸠鳩鸢鳶鸪鴣鸬鸕鸱鴟鹌鵪鹜鶩鹞鷂鹧鷓龈齦龌齷龊齪龃齟龉齬鬓鬢黾黽鼋黿霁霽靓靚雠讎" +
	"讥譏讪訕讷訥诃訶诏詔诋詆诘詰诙詼诚誠诟詬诠詮诣詣诤諍诧詫诨諢诩詡诮誚诰誥诳誑诶誒" +
	"诹諏诿諉谀諛谄諂谌諶谏諫谑謔谒謁谔諤谕諭谘諮谙諳谛諦谟謨谥謚谧謐谪謫谯譙谲譎谶讖" +
	"钗釵钞鈔钏釧钒釩钛鈦钴鈷钹鈸钺鉞钿鈿铂鉑铎鐸铙鐃铛鐺铢銖铣銑铤鋌铧鏵铨銓铵銨铼錸" +
	"锂鋰锄鋤锆鋯锉銼锏鐧锒鋃锗鍺锟錕锢錮锱錙锲鍥锵鏘锶鍶锷鍔镂鏤镉鎘镌鐫镖鏢镧鑭镫鐙" +
	"镬鑊镯鐲镳鑣闱闈闳閎闵閔闾閭阃閫阄鬮阅閱阆閬阈閾阊閶阋鬩阍閽阐闡阑闌阖闔阗闐阙闕" +
	"阚闞陉陘隽雋颀頎颃頏顼頊颉頡颌頜颍潁颔頷颛顓颢顥颦顰飒颯飓颶飕颼飙飆饨飩饪飪饬飭" +
	"馊餿驮馱驷駟驸駙驽駑骈駢骐騏骛騖骞騫骠驃骢驄骥驥骧驤纨紈纭紜纰紕纾紓绀紺绌絀绔絝" +
	"绛絳绠綆绨綈绫綾绮綺绯緋绶綬绷繃缁緇缇緹缙縉缛縟缜縝缟縞缢縊缥縹缦縵缪繆缫繅缭繚" +
	"缰韁缱繾苇葦苋莧荞蕎荟薈荠薺莅蒞莳蒔莴萵莺鶯萦縈蔺藺蔼藹薮藪藓蘚虬虯虮蟣蚬蜆蛎蠣" +
	"蝈蟈蝉蟬蝼螻螨蟎衮袞袅裊裆襠褛褸褴襤觇覘览覽觊覬觎覦觐覲觑覷觞觴躏躪轱軲轲軻轶軼" +
	"轼軾辄輒辇輦辍輟辎輜辔轡辘轆迩邇郏郟郦酈余餘静靜悦悅污汙韬韜韪韙魇魘霭靄玑璣潇瀟"

var (
	seedOnce sync.Once
	seed     *mapping
)

// seedMapping decodes the bundled dataset once; the resulting mapping is
// immutable and shared by every new Store.
func seedMapping() *mapping {
	seedOnce.Do(func() {
		pairs := []rune(defaultPairData)
		if len(pairs)%2 != 0 {
			panic("charmap: bundled pair data has an odd number of characters")
		}
		simplified := make([]rune, 0, len(pairs)/2)
		traditional := make([]rune, 0, len(pairs)/2)
		for i := 0; i < len(pairs); i += 2 {
			simplified = append(simplified, pairs[i])
			traditional = append(traditional, pairs[i+1])
		}
		seed = newMapping(simplified, traditional)
	})
	return seed
}
