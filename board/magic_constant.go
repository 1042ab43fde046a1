package board

import "github.com/daystram/eightpiece/position"

// Baked magic entries indexed by position.Pos. They are validated when the
// lookup tables are built.
var (
	BishopMagics = [TotalCells]MagicEntry{
		position.A1: {Magic: 0x0EEEE053F756C577, Shift: 7},
		position.B1: {Magic: 0x20A1752D5294E8AA, Shift: 6},
		position.C1: {Magic: 0xFFAE7DCBB67E2AD8, Shift: 6},
		position.D1: {Magic: 0x95E20936ACF52029, Shift: 6},
		position.E1: {Magic: 0x8659660ABA92446A, Shift: 6},
		position.F1: {Magic: 0xCB2205A8F212E3CD, Shift: 6},
		position.G1: {Magic: 0x63095C5766AEAC33, Shift: 6},
		position.H1: {Magic: 0x6A0A2CDED7FD32B6, Shift: 7},
		position.A2: {Magic: 0xF7AA6799A42C1974, Shift: 6},
		position.B2: {Magic: 0x0EEBFAAE2308CDE6, Shift: 6},
		position.C2: {Magic: 0x62F5D4C232917A29, Shift: 6},
		position.D2: {Magic: 0x6511DA45FB6E605B, Shift: 6},
		position.E2: {Magic: 0x1C1020709501F819, Shift: 6},
		position.F2: {Magic: 0x9713D67F067E5B55, Shift: 6},
		position.G2: {Magic: 0x4A9B28CAC8388396, Shift: 6},
		position.H2: {Magic: 0x0D80340307A89DE3, Shift: 6},
		position.A3: {Magic: 0xDFE4E245340681A7, Shift: 6},
		position.B3: {Magic: 0x086E282C294CE76A, Shift: 6},
		position.C3: {Magic: 0x7940D0C20066331C, Shift: 8},
		position.D3: {Magic: 0xB268CBA3523295A2, Shift: 8},
		position.E3: {Magic: 0xFA6472E0AEE3A9CD, Shift: 8},
		position.F3: {Magic: 0x4AB90CCE21C05AC4, Shift: 8},
		position.G3: {Magic: 0x19BBE314DB87C5A2, Shift: 6},
		position.H3: {Magic: 0x2D8420D15430341A, Shift: 5},
		position.A4: {Magic: 0x002064D946035D06, Shift: 6},
		position.B4: {Magic: 0x8F7EFC3826FCBC9E, Shift: 6},
		position.C4: {Magic: 0xA5EFF6F3B79E13AC, Shift: 9},
		position.D4: {Magic: 0x979736BB1A2BBF3F, Shift: 12},
		position.E4: {Magic: 0x47EF601CFFC5AA96, Shift: 11},
		position.F4: {Magic: 0xCBB12ECFB3AB9886, Shift: 9},
		position.G4: {Magic: 0x9F3DE5985071281C, Shift: 6},
		position.H4: {Magic: 0xF7F070016C4BB3B1, Shift: 6},
		position.A5: {Magic: 0x5B257CF070A81662, Shift: 6},
		position.B5: {Magic: 0xDDDDF92F252AC221, Shift: 6},
		position.C5: {Magic: 0x03B272448E17640F, Shift: 8},
		position.D5: {Magic: 0x344929A251A4A2B4, Shift: 11},
		position.E5: {Magic: 0xC59870B586EE336E, Shift: 12},
		position.F5: {Magic: 0x0D10F3CD6C346800, Shift: 8},
		position.G5: {Magic: 0x6C4A636CFAEE0FC3, Shift: 6},
		position.H5: {Magic: 0x1B7C2059AA3C501E, Shift: 5},
		position.A6: {Magic: 0xF44FA78502E05C46, Shift: 6},
		position.B6: {Magic: 0xA605295DB4D8A494, Shift: 6},
		position.C6: {Magic: 0x57293F7EEA9072FC, Shift: 8},
		position.D6: {Magic: 0x7A4B502FE080693E, Shift: 8},
		position.E6: {Magic: 0x840FE3E0F7C37EFD, Shift: 8},
		position.F6: {Magic: 0xC6553AE93DE5DEEB, Shift: 8},
		position.G6: {Magic: 0x186E0A1720748471, Shift: 5},
		position.H6: {Magic: 0x344586BD3800F615, Shift: 6},
		position.A7: {Magic: 0xDA81874F48DE2873, Shift: 6},
		position.B7: {Magic: 0xE750DB951630E01C, Shift: 6},
		position.C7: {Magic: 0x8D7AC01104BE4239, Shift: 5},
		position.D7: {Magic: 0xD069455082F020EF, Shift: 6},
		position.E7: {Magic: 0x0B12D09BE0A80D3B, Shift: 5},
		position.F7: {Magic: 0xF66D45FADE4750BF, Shift: 6},
		position.G7: {Magic: 0xDEE2FEF5608BB86B, Shift: 6},
		position.H7: {Magic: 0x3BC4110C30BC372E, Shift: 5},
		position.A8: {Magic: 0x030D2624DC9C2FAB, Shift: 7},
		position.B8: {Magic: 0x3BA0C0EE6C2C0185, Shift: 5},
		position.C8: {Magic: 0x0B7687D6A30FCDB0, Shift: 6},
		position.D8: {Magic: 0x1A17F24EB26AC5B9, Shift: 6},
		position.E8: {Magic: 0x70266A5B055D77F6, Shift: 6},
		position.F8: {Magic: 0x8498203F0163A952, Shift: 6},
		position.G8: {Magic: 0xC4E6130B3DBE1E26, Shift: 6},
		position.H8: {Magic: 0x9CB76E818B87114C, Shift: 7},
	}
	RookMagics = [TotalCells]MagicEntry{
		position.A1: {Magic: 0xEB5BFB1511B7C572, Shift: 14},
		position.B1: {Magic: 0xC8608D0688E7A11A, Shift: 13},
		position.C1: {Magic: 0x3CE72520084C5AD7, Shift: 13},
		position.D1: {Magic: 0xB1CD151D5279C4E2, Shift: 13},
		position.E1: {Magic: 0x145254517D0A38C5, Shift: 13},
		position.F1: {Magic: 0x890F78296C5C6B67, Shift: 14},
		position.G1: {Magic: 0x535154D37FDA3758, Shift: 13},
		position.H1: {Magic: 0x6F10FA4A53DDDD67, Shift: 14},
		position.A2: {Magic: 0xFCF4667B997AD49A, Shift: 13},
		position.B2: {Magic: 0xB381EE06B8D760C9, Shift: 12},
		position.C2: {Magic: 0xF49744D7EA7A7F45, Shift: 12},
		position.D2: {Magic: 0x2FDDB993EF98801C, Shift: 12},
		position.E2: {Magic: 0x52893ECADF61693E, Shift: 12},
		position.F2: {Magic: 0x0CACE9126E294884, Shift: 12},
		position.G2: {Magic: 0x780E224E32B8259B, Shift: 12},
		position.H2: {Magic: 0x4ED7F0F359C79D1D, Shift: 13},
		position.A3: {Magic: 0x58FF574A6B17102C, Shift: 13},
		position.B3: {Magic: 0xC18E42DF30B60108, Shift: 12},
		position.C3: {Magic: 0x82615CC2DC1619E7, Shift: 12},
		position.D3: {Magic: 0x0AA0CFFF3CAB034F, Shift: 12},
		position.E3: {Magic: 0x3AA209B910A2A2C0, Shift: 12},
		position.F3: {Magic: 0x7D6D42D864ED4744, Shift: 12},
		position.G3: {Magic: 0x1F49AC2C1FDA6D5B, Shift: 12},
		position.H3: {Magic: 0x3B6D1A3A4AF92D50, Shift: 13},
		position.A4: {Magic: 0xE7C3B1D0B8EDF3A8, Shift: 13},
		position.B4: {Magic: 0xE01E4C628A791328, Shift: 12},
		position.C4: {Magic: 0xD9918490A8516264, Shift: 12},
		position.D4: {Magic: 0x4AFFDBD9881440CE, Shift: 13},
		position.E4: {Magic: 0x29D9E1F13D9B48A5, Shift: 12},
		position.F4: {Magic: 0xD2647A2309B70AF5, Shift: 12},
		position.G4: {Magic: 0xF9978681E00B17E0, Shift: 12},
		position.H4: {Magic: 0xF1F3DDFDAF83D405, Shift: 13},
		position.A5: {Magic: 0x954BA31977E062BA, Shift: 13},
		position.B5: {Magic: 0xD52B1274D43F1A9C, Shift: 12},
		position.C5: {Magic: 0xBE43F8A40D902543, Shift: 12},
		position.D5: {Magic: 0x8866A7F07B184CA5, Shift: 12},
		position.E5: {Magic: 0xF219EF680D77619C, Shift: 12},
		position.F5: {Magic: 0x9BB75C3B8476F746, Shift: 12},
		position.G5: {Magic: 0xAD1EE18B5B780265, Shift: 12},
		position.H5: {Magic: 0xB6B44224206E74E5, Shift: 13},
		position.A6: {Magic: 0x649CDC1F34AEA2F6, Shift: 13},
		position.B6: {Magic: 0xFF83A9859BA534C4, Shift: 12},
		position.C6: {Magic: 0x37CA319A4D50C97E, Shift: 12},
		position.D6: {Magic: 0x858715E0CC1F8F7A, Shift: 12},
		position.E6: {Magic: 0xE729AA5F024DF2C0, Shift: 12},
		position.F6: {Magic: 0x1274960D5333E983, Shift: 12},
		position.G6: {Magic: 0x4E78A790882C2806, Shift: 12},
		position.H6: {Magic: 0x7C27B241F8825A5B, Shift: 13},
		position.A7: {Magic: 0x0DFC0F9386834FD8, Shift: 12},
		position.B7: {Magic: 0x87342325FE073668, Shift: 12},
		position.C7: {Magic: 0x850AE96248D88210, Shift: 12},
		position.D7: {Magic: 0x8A8D8EA6E640F8F7, Shift: 12},
		position.E7: {Magic: 0xC6AC009AB7852C97, Shift: 12},
		position.F7: {Magic: 0x6D9B84E49D05E5D8, Shift: 12},
		position.G7: {Magic: 0xF598D5B0F5881D70, Shift: 11},
		position.H7: {Magic: 0x1238BF08A6F9C38D, Shift: 12},
		position.A8: {Magic: 0xCFC8C410148D3AF6, Shift: 13},
		position.B8: {Magic: 0x234F1593282FADBC, Shift: 12},
		position.C8: {Magic: 0x6BCC4CA147847096, Shift: 13},
		position.D8: {Magic: 0xA7FF3C5F35FFF73A, Shift: 13},
		position.E8: {Magic: 0x6A4F4F1EC85934C6, Shift: 13},
		position.F8: {Magic: 0x7E23DAD717AC6081, Shift: 13},
		position.G8: {Magic: 0x7211D918B0800852, Shift: 12},
		position.H8: {Magic: 0x8588AC87AA8CA46A, Shift: 13},
	}
)
