package menu

import "zaoan/models"

// Fixed reference catalog. The shop edits this file when the menu changes;
// there is no admin surface for it.

var categories = []models.Category{
	{ID: "sandwich", Name: "三明治系列"},
	{ID: "burger", Name: "漢堡系列"},
	{ID: "omelet", Name: "蛋餅系列"},
	{ID: "toast", Name: "吐司/厚片"},
	{ID: "drink", Name: "飲料"},
}

var items = []models.CatalogItem{
	{ID: "A01", Name: "煎蛋三明治", Price: 25, Category: "sandwich"},
	{ID: "A02", Name: "起司蛋三明治", Price: 35, Category: "sandwich"},
	{ID: "A03", Name: "肉鬆蛋三明治", Price: 35, Category: "sandwich"},
	{ID: "A04", Name: "玉米蛋三明治", Price: 35, Category: "sandwich"},
	{ID: "A05", Name: "火腿蛋三明治", Price: 40, Category: "sandwich"},
	{ID: "A06", Name: "培根蛋三明治", Price: 40, Category: "sandwich"},
	{ID: "A07", Name: "香雞蛋三明治", Price: 40, Category: "sandwich"},
	{ID: "A08", Name: "燻雞蛋三明治", Price: 40, Category: "sandwich"},
	{ID: "B01", Name: "豬肉漢堡", Price: 40, Category: "burger"},
	{ID: "B02", Name: "香雞漢堡", Price: 45, Category: "burger"},
	{ID: "B03", Name: "牛肉漢堡", Price: 55, Category: "burger"},
	{ID: "C01", Name: "原味蛋餅", Price: 25, Category: "omelet"},
	{ID: "C02", Name: "玉米蛋餅", Price: 35, Category: "omelet"},
	{ID: "C03", Name: "火腿蛋餅", Price: 35, Category: "omelet"},
	{ID: "T01", Name: "奶酥厚片", Price: 25, Category: "toast"},
	{ID: "T02", Name: "花生厚片", Price: 25, Category: "toast"},
	{ID: "T03", Name: "巧克力厚片", Price: 25, Category: "toast"},
	{ID: "T04", Name: "草莓果醬厚片", Price: 25, Category: "toast"},
	{ID: "T05", Name: "蒜香厚片", Price: 30, Category: "toast"},
	{ID: "T06", Name: "起司肉鬆吐司", Price: 35, Category: "toast"},
	{ID: "T07", Name: "火腿起司吐司", Price: 40, Category: "toast"},
	{ID: "T08", Name: "培根起司吐司", Price: 45, Category: "toast"},
	{ID: "D01", Name: "紅茶", Price: 20, Category: "drink"},
	{ID: "D02", Name: "奶茶", Price: 25, Category: "drink"},
	{ID: "D03", Name: "豆漿", Price: 20, Category: "drink"},
}

// commonNotes are the one-tap customization annotations shown in the note
// dialog on both the customer and POS screens.
var commonNotes = []string{
	"不要洋蔥",
	"不要蔥",
	"不要香菜",
	"少冰",
	"去冰",
	"微糖",
	"半糖",
	"無糖",
	"加辣",
	"不要辣",
	"蛋全熟",
	"加蛋",
	"切邊",
}

// tableNumbers are the dine-in tables available for selection.
var tableNumbers = []string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "10"}
