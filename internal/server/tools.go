package server

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// registerTools registers every tool with the MCP server. All tools take
// a chainID; a missing one falls back to the configured default chain.
func (s *Server) registerTools() {
	chainParam := mcp.WithString("chainID", mcp.Description("Blockchain ID (e.g. '1' for Ethereum, '56' for BSC, '137' for Polygon)"), mcp.Required())

	// Account tools
	s.mcpServer.AddTool(mcp.NewTool("getAccountBalance",
		mcp.WithDescription("Get the native coin balance of an address in wei and ether"),
		mcp.WithString("address", mcp.Description("Account address to query"), mcp.Required()),
		chainParam,
	), s.getAccountBalanceHandler)

	s.mcpServer.AddTool(mcp.NewTool("getTransactions",
		mcp.WithDescription("Get recent normal transactions for an address"),
		mcp.WithString("address", mcp.Description("Account address to query"), mcp.Required()),
		mcp.WithString("startBlock", mcp.Description("First block to include (default 0)")),
		mcp.WithString("endBlock", mcp.Description("Last block to include (default 99999999)")),
		mcp.WithString("page", mcp.Description("Page number (default 1)")),
		mcp.WithString("offset", mcp.Description("Records per page (default 10)")),
		chainParam,
	), s.getTransactionsHandler)

	s.mcpServer.AddTool(mcp.NewTool("getInternalTransactions",
		mcp.WithDescription("Get recent internal (message call) transactions for an address"),
		mcp.WithString("address", mcp.Description("Account address to query"), mcp.Required()),
		mcp.WithString("startBlock", mcp.Description("First block to include (default 0)")),
		mcp.WithString("endBlock", mcp.Description("Last block to include (default 99999999)")),
		mcp.WithString("page", mcp.Description("Page number (default 1)")),
		mcp.WithString("offset", mcp.Description("Records per page (default 10)")),
		chainParam,
	), s.getInternalTransactionsHandler)

	s.mcpServer.AddTool(mcp.NewTool("getTokenBalance",
		mcp.WithDescription("Get the ERC-20 token balance of an address, in base units"),
		mcp.WithString("contractAddress", mcp.Description("Token contract address"), mcp.Required()),
		mcp.WithString("address", mcp.Description("Holder address to query"), mcp.Required()),
		chainParam,
	), s.getTokenBalanceHandler)

	s.mcpServer.AddTool(mcp.NewTool("getTokenTransfers",
		mcp.WithDescription("Get ERC-20 token transfers for an address, optionally filtered to one token"),
		mcp.WithString("address", mcp.Description("Account address to query"), mcp.Required()),
		mcp.WithString("contractAddress", mcp.Description("Token contract to filter by")),
		mcp.WithString("page", mcp.Description("Page number (default 1)")),
		mcp.WithString("offset", mcp.Description("Records per page (default 10)")),
		chainParam,
	), s.getTokenTransfersHandler)

	s.mcpServer.AddTool(mcp.NewTool("getERC721Transfers",
		mcp.WithDescription("Get ERC-721 (NFT) transfers for an address, optionally filtered to one collection"),
		mcp.WithString("address", mcp.Description("Account address to query"), mcp.Required()),
		mcp.WithString("contractAddress", mcp.Description("Collection contract to filter by")),
		mcp.WithString("page", mcp.Description("Page number (default 1)")),
		mcp.WithString("offset", mcp.Description("Records per page (default 10)")),
		chainParam,
	), s.getERC721TransfersHandler)

	s.mcpServer.AddTool(mcp.NewTool("getTokenDetails",
		mcp.WithDescription("Get name, symbol, decimals and total supply of an ERC-20 token"),
		mcp.WithString("contractAddress", mcp.Description("Token contract address"), mcp.Required()),
		chainParam,
	), s.getTokenDetailsHandler)

	// Contract tools
	s.mcpServer.AddTool(mcp.NewTool("getContractABI",
		mcp.WithDescription("Get the ABI of a verified contract, with function and event summaries"),
		mcp.WithString("contractAddress", mcp.Description("Contract address"), mcp.Required()),
		chainParam,
	), s.getContractABIHandler)

	s.mcpServer.AddTool(mcp.NewTool("getContractSourceCode",
		mcp.WithDescription("Get the verified source code and compiler metadata of a contract"),
		mcp.WithString("contractAddress", mcp.Description("Contract address"), mcp.Required()),
		chainParam,
	), s.getContractSourceHandler)

	s.mcpServer.AddTool(mcp.NewTool("getContractCreation",
		mcp.WithDescription("Get deployer address and creation transaction for up to 5 contracts"),
		mcp.WithString("contractAddresses", mcp.Description("Comma-separated list of contract addresses (max 5)"), mcp.Required()),
		chainParam,
	), s.getContractCreationHandler)

	s.mcpServer.AddTool(mcp.NewTool("executeContractMethod",
		mcp.WithDescription("Execute a read-only contract method: encodes the call from an ABI fragment, runs eth_call and decodes the result"),
		mcp.WithString("contractAddress", mcp.Description("Contract address"), mcp.Required()),
		mcp.WithString("methodABI", mcp.Description("JSON ABI fragment of the single method to call"), mcp.Required()),
		mcp.WithString("methodParams", mcp.Description("Comma-separated parameter values, in declaration order")),
		mcp.WithString("blockTag", mcp.Description("Block tag or number (default latest)")),
		chainParam,
	), s.executeContractMethodHandler)

	s.mcpServer.AddTool(mcp.NewTool("ethCall",
		mcp.WithDescription("Execute a raw eth_call with pre-encoded call data"),
		mcp.WithString("to", mcp.Description("Contract address to call"), mcp.Required()),
		mcp.WithString("data", mcp.Description("Hex-encoded call data"), mcp.Required()),
		mcp.WithString("blockTag", mcp.Description("Block tag or number (default latest)")),
		chainParam,
	), s.ethCallHandler)

	// Transaction tools
	s.mcpServer.AddTool(mcp.NewTool("ethGetTransactionByHash",
		mcp.WithDescription("Get full transaction details by hash"),
		mcp.WithString("txHash", mcp.Description("Transaction hash"), mcp.Required()),
		chainParam,
	), s.getTransactionByHashHandler)

	s.mcpServer.AddTool(mcp.NewTool("ethGetTransactionReceipt",
		mcp.WithDescription("Get the receipt (status, gas used, logs) of a transaction"),
		mcp.WithString("txHash", mcp.Description("Transaction hash"), mcp.Required()),
		chainParam,
	), s.getTransactionReceiptHandler)

	s.mcpServer.AddTool(mcp.NewTool("ethGetTransactionReceipts",
		mcp.WithDescription("Get receipts for up to 20 transactions in one call"),
		mcp.WithString("txHashes", mcp.Description("Comma-separated list of transaction hashes (max 20)"), mcp.Required()),
		chainParam,
	), s.getTransactionReceiptsHandler)

	s.mcpServer.AddTool(mcp.NewTool("getTransactionStatus",
		mcp.WithDescription("Check the contract execution status of a transaction"),
		mcp.WithString("txHash", mcp.Description("Transaction hash"), mcp.Required()),
		chainParam,
	), s.getTransactionStatusHandler)

	s.mcpServer.AddTool(mcp.NewTool("ethGetTransactionCount",
		mcp.WithDescription("Get the number of transactions sent from an address (nonce)"),
		mcp.WithString("address", mcp.Description("Account address to query"), mcp.Required()),
		mcp.WithString("blockTag", mcp.Description("Block tag or number (default latest)")),
		chainParam,
	), s.getTransactionCountHandler)

	// Block and chain tools
	s.mcpServer.AddTool(mcp.NewTool("ethBlockNumber",
		mcp.WithDescription("Get the latest block number"),
		chainParam,
	), s.blockNumberHandler)

	s.mcpServer.AddTool(mcp.NewTool("ethGetBlockByNumber",
		mcp.WithDescription("Get a block with full transactions by number or tag"),
		mcp.WithString("blockNumber", mcp.Description("Block number or tag (default latest)")),
		chainParam,
	), s.getBlockByNumberHandler)

	s.mcpServer.AddTool(mcp.NewTool("getBlockNumberByTimestamp",
		mcp.WithDescription("Get the block mined closest to a Unix timestamp"),
		mcp.WithString("timestamp", mcp.Description("Unix timestamp in seconds"), mcp.Required()),
		mcp.WithString("closest", mcp.Description("'before' or 'after' the timestamp (default before)")),
		chainParam,
	), s.blockNumberByTimestampHandler)

	s.mcpServer.AddTool(mcp.NewTool("getGasOracle",
		mcp.WithDescription("Get current safe/proposed/fast gas price recommendations"),
		chainParam,
	), s.gasOracleHandler)

	s.mcpServer.AddTool(mcp.NewTool("getEventLogs",
		mcp.WithDescription("Get event logs filtered by address, block range and topics"),
		mcp.WithString("address", mcp.Description("Contract address to filter by")),
		mcp.WithString("fromBlock", mcp.Description("First block to include (default 0)")),
		mcp.WithString("toBlock", mcp.Description("Last block to include (default latest)")),
		mcp.WithString("topic0", mcp.Description("First topic (event signature hash)")),
		mcp.WithString("topic1", mcp.Description("Second topic")),
		mcp.WithString("page", mcp.Description("Page number")),
		mcp.WithString("offset", mcp.Description("Records per page")),
		chainParam,
	), s.eventLogsHandler)
}
