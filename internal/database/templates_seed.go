package database

// defaultTemplates is the built-in catalog of Thai narrative templates.
var defaultTemplates = []struct {
	name        string
	description string
	category    string
	content     string
}{
	{
		name:        "เรื่องสั้นโรแมนติก",
		description: "เทมเพลตสำหรับเขียนเรื่องสั้นแนวโรแมนติก",
		category:    "romance",
		content: `บทที่ 1: การพบกัน
- แนะนำตัวละครหลัก
- สถานการณ์ที่พาให้พบกัน
- ความประทับใจแรกพบ

บทที่ 2: การรู้จักกัน
- การสื่อสารและเรียนรู้ซึ่งกันและกัน
- อุปสรรคเบื้องต้น
- ความรู้สึกที่เริ่มเปลี่ยนแปลง

บทที่ 3: ความรัก
- การยอมรับความรู้สึก
- การแก้ไขปัญหาร่วมกัน
- จบลงด้วยความสุข`,
	},
	{
		name:        "นิยายผจญภัย",
		description: "เทมเพลตสำหรับนิยายแนวผจญภัย",
		category:    "adventure",
		content: `บทที่ 1: จุดเริ่มต้น
- แนะนำโลกและตัวละคร
- เหตุการณ์ที่เรียกให้เดินทาง
- การเตรียมพร้อม

บทที่ 2: การเดินทาง
- อุปสรรคแรก
- การเรียนรู้ทักษะใหม่
- พบเพื่อนร่วมทาง

บทที่ 3: วิกฤต
- ความท้าทายใหญ่
- การสูญเสีย
- การเติบโตของตัวละคร

บทที่ 4: การกลับ
- การเอาชนะอุปสรรคสุดท้าย
- การเปลี่ยนแปลงของตัวละคร
- การกลับสู่บ้าน`,
	},
}
