package chaincfg

import (
	"encoding/hex"

	"github.com/pkg/errors"

	"github.com/zecnet/zecd/util"
)

// Address encoding prefixes, shared between the params definitions and the
// reward address tables below.
var (
	mainnetP2SHPrefix = [2]byte{0x1c, 0xbd} // addresses start with t3
	testnetP2SHPrefix = [2]byte{0x1c, 0xba} // addresses start with t2
)

// mustScriptHashAddress builds a script-hash address from a hex-encoded
// 20-byte script hash. It panics on malformed input since it is only ever
// called with the hardcoded table data below.
func mustScriptHashAddress(hexHash string, prefix [2]byte) util.Address {
	hash, err := hex.DecodeString(hexHash)
	if err != nil {
		panic(errors.Wrapf(err, "malformed script hash %q", hexHash))
	}
	addr, err := util.NewAddressScriptHash(hash, prefix)
	if err != nil {
		panic(errors.Wrapf(err, "invalid script hash %q", hexHash))
	}
	return addr
}

// scriptHashAddresses builds an address rotation list from hex-encoded
// script hashes.
func scriptHashAddresses(hexHashes []string, prefix [2]byte) []util.Address {
	addresses := make([]util.Address, len(hexHashes))
	for i, hexHash := range hexHashes {
		addresses[i] = mustScriptHashAddress(hexHash, prefix)
	}
	return addresses
}

// repeatScriptHashAddress builds a rotation list that pays the same address
// in every period. The Zcash Foundation and Major Grants streams use a
// single address for the whole funding period.
func repeatScriptHashAddress(hexHash string, prefix [2]byte, n int) []util.Address {
	addr := mustScriptHashAddress(hexHash, prefix)
	addresses := make([]util.Address, n)
	for i := range addresses {
		addresses[i] = addr
	}
	return addresses
}

// foundersRewardAddressesMainnet is the mainnet founders reward rotation
// list, one entry per founder address change interval.
var foundersRewardAddressesMainnet = scriptHashAddresses([]string{
	"b7749035e1ca74a00cddd26efb3e19e4748a655c",
	"0e99666f2a7123dbf147c7ba0487b43d108cf926",
	"2d05554692987ebc28f700593a85831800a9b551",
	"61ef2c32eb51eb95e38114b04b25f9f1bb02b347",
	"d94b95739adc0d3c7716b417db90329653d4a322",
	"502a3928bc7b40752b1f0b608e87694d3075af52",
	"84dc3b4c3db560aac36f5c3870b8e35bdaf60b42",
	"9021c6f7d6b7f11818a0b3fea1bed340baaf462d",
	"867de8a206b92f4aee28a40b407e81b341c34ecc",
	"b50f0932a9411ee3257ff340fc5b8651f1181b96",
	"73be16db528b03e97b44e9cc172dbf38ab1ac868",
	"35682778ae3ad6aeda6ea5cc935daee52140755e",
	"d61d1c0055b56d62549e2c8489ef8d869b99aeec",
	"0018037868d863704b5e008e479c6a339b421f62",
	"d4da96305b5c0a7f58574c78e020ea0969e8c490",
	"4e4c01fc326948e6722f115ae54495004b341dd7",
	"30f317f34d96af1cee5e1fc9ac6c4dc720f2de29",
	"5dfef63009137d8e8bf5511ffa7cfca42557daef",
	"c5e7e568608dd25aa36bc3df69e67fb909573630",
	"a1d024660638e447955105c4451c73ff1803a277",
	"e8013e8eddce511ec61c9556b077680df0f2ed05",
	"19ca18103d1b0f3871678365f5ca4c8bbe8a6577",
	"cf14843391f663680c635b3dd4b0a854a91ff318",
	"540eeea0212b4b09ed89d4ee56a2c540257bc672",
	"3d79c04fd4a335f3888bd46bc106cd9ff1ca823e",
	"73d01dbec0062211bb875187f818387c2ca8ce09",
	"a62adfb40ac833ca04d19e8063fc16a524888c71",
	"44216c008e0e37e593e620aa90fd2eedc70c9f41",
	"9ecf6e195ede2108fae77c8ac808c3d6feb52377",
	"5661e881639201eba0daa60556fae8aff07703a4",
	"e319a21cebacf67b6b5d4cc9dafcc9dc5e8995b4",
	"f3b1a935fbcf300aa6adbd24f6246aeba4a51cbe",
	"d1df31e40c27ba6626546311d37b252575d82356",
	"6a111c618dcd8e2f12f3a9815273b1e4ee95d053",
	"edb81257e3f1d76d67647fbfbb43caeae7ce48a8",
	"5927e8176ae6c7ef7f3969d5fb2ce2b4476d0aaa",
	"02323ef95dde83d63ccf4eeeaddb3cb6a7386c85",
	"3c1cc1dfdb0afec181149c757a5afb8b849ee1cf",
	"761c442f466478cd5cca9605689aca69c2abf296",
	"167ceb53246b4ad19e1b9bd33088a1ca2289933c",
	"341676959812ab5ce79c9931fabeac6df6a50112",
	"fd5b7e43f8532d7a5cfaf4f476404f48f07a7465",
	"a8e30197f31c684c6bf7b83940755d8189f376ca",
	"ab2ef36c96bc47fa37bf184dc562055d8634ec59",
	"ecf570437e9b03744ff3ba28cfd111efbd0a9115",
	"24ae09ed632352c00c59b04bb7748a1d5f852a40",
	"55afb06b52afd150861e7cd2a934895ab88b9d61",
	"4ac16056013d7e397d731c65be6ae7862195fb20",
}, mainnetP2SHPrefix)

// foundersRewardAddressesTestnet is the testnet founders reward rotation
// list.
var foundersRewardAddressesTestnet = scriptHashAddresses([]string{
	"ec787b964b859a0898a70e084616ffdd33c04c2c",
	"d22410c84ac48cc208abb9ac8b308685d82ca271",
	"a5bd18a791361f239895e57c23b02d06ce23693a",
	"bf721591130bd4e3fbd21b382d858ba7d10a1a2a",
	"045de8ec122eabfbe2b4cd66e37bb03ca4d5fa04",
	"808f722c19ee45aa57d4c0c3a85f6f1b42ce234f",
	"d08479aa24bf5d52faf8688f947f5e1e36627603",
	"ee880ef8fd44eaeb15ea4733322c5b82928a5c7f",
	"d99af62f89fa7af5579c2577b4874b88a648804d",
	"81e4f8eed8ea82d6f362109f99a4b882e75f52cb",
	"34a11a3957d497024fbddf57ddc940891d1359e3",
	"3d7915b9c71d2f54a0d56178e1777915d78d13e2",
	"cb6a5afa7716bd3d9aefe53fe4f39abca89d57d2",
	"78c08c98344b2cd267cce0885dd056a941290d7f",
	"6df02584e57e32001f48f5f2829b1617f5d9e8e0",
	"b3537c6f54238d545aeacce26aa9db19d109e223",
	"7572cad5e2b71925c0624a20aa46b2b65c01d12e",
	"49b95032447ac14fc78684dc36cea815a81d2edf",
	"4650aa43226170c97d0bf54b63ea513cc2b780dd",
	"ebddd52ea153b34a2b305a3b41838787f5e0e07d",
	"d87c523d861138d567c661771c1cb75a12fb5e22",
	"9e99158b562f14f60cf8ad9e7ad394f86758b32d",
	"f684600cbee29cc4646ca738c5415c5f79b8a18d",
	"6a3e38b31e5f267e2324e8d94f86ad5b3d4bbf65",
	"ace88bc9cc94c29a0727260a05b5567a14fc23de",
	"dc3b8790e9335e0b8e4eec224784118324885d5c",
	"9d9a1afc7b53aee7f8fa0d8bc950e55e8db6da66",
	"085821d122eaaeec239849434054a754b455b803",
	"bf8d1b6e36b7aef01fc6aaf28e7df6037d6308b7",
	"c56220355b91b31ddc43ebb8b3aaa93f347d2421",
	"4844e8b6aa3a33440bf271b8fdda98326d86b9cb",
	"8d36e94fcdac6187aafa0fb3dc5cf65083a033e4",
	"ed79687540a37882324d194a517417f344e63218",
	"16c6ebd41c8eeca17f37af22df3fd391609ba600",
	"5d7686d8170d034fa91492c6c633ee9c3747e444",
	"373c927aeac4e5b7c9f6f838bc50985fdf2f6fcf",
	"a0234be72f0ce4c660605d392dcacca13aa28aea",
	"64809e1752a53dbcc48ce59c313d48f8f137569d",
	"45b002604631c1e089251a855c96c7774d35d026",
	"9ade9e3768235a3360644ad601d7dfa12fe5f864",
	"701da6aeba6bba3938f193cac09ad08a68ed4067",
	"e83cf47703a7aaa15c3e68e68d4f7d4a0141e714",
	"2b1090f00c0a497685f14ee090e6c1d804ba4b75",
	"5d2551d43944fc2085279bf7f3444407d361ea92",
	"a95817d05b7382e4ce064880d51cdebae61b4950",
	"cea7bada16b6e101934cb8abef0e731886a0460b",
	"4ba3f5f3dd1ae705edf9e69661950b27cc54aa3d",
	"d8e05ccc98e536d160e5d8c3b8679fc78925d2f2",
}, testnetP2SHPrefix)

// eccFundingAddressesMainnet is the Electric Coin Company funding stream
// rotation list for mainnet.
var eccFundingAddressesMainnet = scriptHashAddresses([]string{
	"247229407af1eb63cbf861b3c3328b9a7e99177d",
	"7381bdbd963f34fbc6aaba33e35ad39b58a0d506",
	"07664b42e61ff5d634d755b4fc4c39a10a01e5e5",
	"93f39d78c27636f3dd9605b7382f1fef510c4c81",
	"7c02ed18e93884a4eb9b605827a0fa5cdf42cdb5",
	"3e71a0629c3dfc42710da0b8ea5304ed1c1bf8c5",
	"aefcd8d8b1e2b8c8a96eb180c8d609029800feb2",
	"583d31a21edb99cce06963ec419de20aaeefbd67",
	"f9f24f9e6b42df8b90a1bc7991f021c1fb185de7",
	"ca51e3d4d638f7fdc22215f0eaf7910b0e868136",
	"73cf6efaf1a855725026840bf33e7279497315c1",
	"e52d3c0a58d4aea9140ecd7aa0ac7278d073c736",
	"1b4217582be95d6fa180c7035a297199adc29071",
	"b71828f83c3733f810e8e940a4d461478d996896",
	"2bdf0462d738ef0123ba2e8ca2be48a62349b024",
	"a5d5c10fe6ff8762b54366ed3bbaa87f497916e2",
	"9eff629356779750eff7a8c5379788b3e63bcc1e",
	"cc36c0a2f933144ad086562b3ba7f356bd7a07f6",
	"39a0beee6148b63376dc793b663d12ca5260f8c9",
	"fcd48f607ad4fa1275347b6417f609938b74796b",
	"4840957cfc711d5e6e7125990b8bfcfb3505c6c0",
	"4421d6ec97297399558e5ce4ff313b4c8c89cd0f",
	"c83e10676974b59f224a55e8608b6a39771daa81",
	"931c76ad8024a83996a4ffb0e18777779e2a96a9",
	"94f4ac23462718904151d68f04c7c1940505719d",
	"bf6390e11310782258501a6c541619308ef9f7cf",
	"ee16f0a4c1c451e3650be2e103f6ef5e9cbb94d9",
	"1f0d26b9d543634a0657852aeff84230d76da007",
	"46d3bd57c9bd58f8bb61b10ea2d49452978faa05",
	"1cf306461ec61b5bb7e4a5eb64f07dec33870bd2",
	"d87d290aad74c953e63124be7cbcd16cfcd186e2",
	"ebde28d6dcb86d6121012b6ba3658d353210e181",
	"f3d0f279ac2d831616c4f7979b3350b40baec849",
	"2c429370b78febae4374f2049981b6a628dcf28b",
	"ae8f5c0f94329d6d685b69c16541036ef650dd54",
	"8069cd696212744b9d6ded7c63f925c4a90a5c09",
	"9696d9858ef44ee707c0155663a9a29cd87f3e4e",
	"67bfa1e34dd3434ffb2c73f2e7576a0beccde6f7",
	"5cc2be062d2aae7c7da0368a3dd3ed540b6b440f",
	"60f88f4cfbfff1513098efda0f721c8881bf609a",
	"e29fc05fbfd75fd38aeea0f32cb8177074432562",
	"7dc9f5fb9a67cb296cba6721ee421834f8c9a2b2",
	"8fa168c2e17185f4b8c24a2ea2e75b0f75b91d72",
	"15a08657e1dee06366cbb3e9109318867f2c26a6",
	"6acf18dfa8956726fc70ff2948fb0614a248e490",
	"a24601fd8203c12e224837c45cfc578307bf017f",
	"76ee60b2848941262833bdee7803cc61e641e958",
	"c7981462c7f08c486020e571f28acd454556e7e4",
}, mainnetP2SHPrefix)

// eccFundingAddressesTestnet is the Electric Coin Company funding stream
// rotation list for testnet.
var eccFundingAddressesTestnet = scriptHashAddresses([]string{
	"b949e234bfcf7aef74c6d884a7a03fff70b920cc",
	"c53f541c4e3a2cde38ddaa365a9971c939089faf",
	"1a328ce00ee730fdc3880f2d3902f08e133793d9",
	"0d82fafbe6fb0d110ee14731e075045dc8623b34",
	"a238857faa2ad0695fd2e2b045c99d7dcc75add5",
	"65bb0845b6eb003ecae28bb06f49662b66f6973e",
	"f84b9b296a0d2e491aaf85dded9b27d1cca28b9d",
	"864fc05533bee53ec38657d95f05f9ee2d334b60",
	"cc277d95067a63e4e433f97fdb337374fb695e39",
	"d932f1c6a01a8a2a46799371565ba3d7e7d609f3",
	"b9997f695f88779f1697beb22a66fcf4c0354b8e",
	"65d16cf2ea08efaaee6ec0d06bc4b45dc9d9a4c6",
	"9d6ff616982fc1cc4b9cd44a22e8fe160a5404cb",
	"fa646de53cf0139e7ccda6b1f1c2b9262fba96cc",
	"0ea67398d3e46926bcc00fda58981349fa05bdfe",
	"e9f1ed4498c5f081017ae64e5ad33927f0a77599",
	"ab807d1889368060e8396239f07a9f5e1d9b5a8e",
	"8042579f0fa0e2d8538cd7739a4c56214d395a10",
	"1d59ef45b95530046df8ffa44ba22df243692627",
	"b0731eb6c223342f3c210e8ad41894c43fd3a7cd",
	"ca87de56e23f390bb65440d98fd4fd0cbeb26ab0",
	"6e8be9218d7b751ef4ab6bcaf7e8895f4c497701",
	"4e1363cb4c39739fe8ee906fe37840e56b08e03a",
	"53bd8cc4820b012107dafdd6ed3664475e2331b8",
	"d18e661015dcdb46fbb408f0605f6ca18a57ddd1",
	"041510f7a3824651ca9b6ab01196230c7f444dde",
	"6ad468dc5a64df71279bce57aa8d6a3c7ca701c8",
	"2d3fb6a8bd7b6cb15a4bc317d6476199d3283b53",
	"5074d224ff30286d30da650d2b90443a8a9ffca3",
	"4afc6518af13fa31415f20018f2c0b7a1a5a88a3",
	"b8ee960abbe32b977ba515cd5c0702608016beff",
	"9e84cea7c275b4062d92257611c00d5833fe5849",
	"ccb7bc3e85bd906f155550bfb475616c0bd4f167",
	"2aca90a638c8fcbb80362a42ee7175bdeaacea0c",
	"ab7f8cecd853cc71dcabb6a5e8b2a75d30018e79",
	"e677d5de92b2c4a5ed73b7031ed65e2a48222708",
	"c5b0caef6d2492fd8fa73b6281fc902487b059fc",
	"3a4a42588115421a7690b677ddb1e771f47357b0",
	"de09f7ce269b827154cd235ef54ce3d0b8931d82",
	"4f1c69d0cd0f5bc2550753e700e921cdcc83b906",
	"80c48291192a16204f01f636c993f7e587557307",
	"484e8a862cb942cd76d9822203697d6afb433c04",
	"5d0df0c2e59ef72a8a1eb95df7bb3ea890f8eb9c",
	"df67cd6bed3920aaad22eb1e4d638abf654d9efb",
	"2c1c32f052a4761706b6be8490eab89144c9ba9c",
	"2316f06d812819e872b2c2bd6ff68225d6997397",
	"2285a73ea97397754aa8f008bda0594179e11c96",
	"eb6a8fe0455f039aa203adb3f0da10f1c31681e7",
	"923abb5507d16a3d46b02c4c1c3d086e6b03a102",
	"fd99937ea9769d32af7bbc39c71d72ac4ce2c407",
	"0ecbfe0ce5f3a473ddd83947faf6a842607cb761",
}, testnetP2SHPrefix)

var (
	zfFundingAddressesMainnet = repeatScriptHashAddress(
		"d6d965a7e8018e0b839d15e6c4962d36b12180ce", mainnetP2SHPrefix, 48)
	mgFundingAddressesMainnet = repeatScriptHashAddress(
		"4e3a957702384258f7851654d20cd9ef5af92465", mainnetP2SHPrefix, 48)
	zfFundingAddressesTestnet = repeatScriptHashAddress(
		"c43e950663469258705f1a5b724af0d6d1efbbf5", testnetP2SHPrefix, 51)
	mgFundingAddressesTestnet = repeatScriptHashAddress(
		"0e388342a27688f1655f5c0cdeb3bea6a793ff4d", testnetP2SHPrefix, 51)
)
