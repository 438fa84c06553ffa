package server

import (
	"context"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/Mohsinsiddi/escan-mcp/internal/etherscan"
)

// splitList splits a comma-separated argument into trimmed, non-empty items.
func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// ---------------------------------------------------------------------------
// account tools
// ---------------------------------------------------------------------------

func (s *Server) getAccountBalanceHandler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	address, err := request.RequireString("address")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(s.client.AccountBalance(ctx, s.chainID(request), address))
}

func pageOpts(request mcp.CallToolRequest) etherscan.PageOpts {
	return etherscan.PageOpts{
		StartBlock: request.GetString("startBlock", ""),
		EndBlock:   request.GetString("endBlock", ""),
		Page:       request.GetString("page", ""),
		Offset:     request.GetString("offset", ""),
	}
}

func (s *Server) getTransactionsHandler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	address, err := request.RequireString("address")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(s.client.Transactions(ctx, s.chainID(request), address, pageOpts(request)))
}

func (s *Server) getInternalTransactionsHandler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	address, err := request.RequireString("address")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(s.client.InternalTransactions(ctx, s.chainID(request), address, pageOpts(request)))
}

func (s *Server) getTokenBalanceHandler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	contractAddress, err := request.RequireString("contractAddress")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	address, err := request.RequireString("address")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(s.client.TokenBalance(ctx, s.chainID(request), contractAddress, address))
}

func (s *Server) getTokenTransfersHandler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	address, err := request.RequireString("address")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	contractAddress := request.GetString("contractAddress", "")
	return jsonResult(s.client.TokenTransfers(ctx, s.chainID(request), address, contractAddress, pageOpts(request)))
}

func (s *Server) getERC721TransfersHandler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	address, err := request.RequireString("address")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	contractAddress := request.GetString("contractAddress", "")
	return jsonResult(s.client.ERC721Transfers(ctx, s.chainID(request), address, contractAddress, pageOpts(request)))
}

func (s *Server) getTokenDetailsHandler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	contractAddress, err := request.RequireString("contractAddress")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(s.client.TokenDetailsFor(ctx, s.chainID(request), contractAddress))
}

// ---------------------------------------------------------------------------
// contract tools
// ---------------------------------------------------------------------------

func (s *Server) getContractABIHandler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	contractAddress, err := request.RequireString("contractAddress")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(s.client.ContractABI(ctx, s.chainID(request), contractAddress))
}

func (s *Server) getContractSourceHandler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	contractAddress, err := request.RequireString("contractAddress")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(s.client.ContractSource(ctx, s.chainID(request), contractAddress))
}

func (s *Server) getContractCreationHandler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raw, err := request.RequireString("contractAddresses")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(s.client.ContractCreation(ctx, s.chainID(request), splitList(raw)))
}

func (s *Server) executeContractMethodHandler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	contractAddress, err := request.RequireString("contractAddress")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	methodABI, err := request.RequireString("methodABI")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	methodParams := request.GetString("methodParams", "")
	blockTag := request.GetString("blockTag", "")
	return jsonResult(s.client.ExecuteMethod(ctx, s.chainID(request), contractAddress, methodABI, methodParams, blockTag))
}

func (s *Server) ethCallHandler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	to, err := request.RequireString("to")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	data, err := request.RequireString("data")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	blockTag := request.GetString("blockTag", "")
	return jsonResult(s.client.EthCall(ctx, s.chainID(request), to, data, blockTag))
}

// ---------------------------------------------------------------------------
// transaction tools
// ---------------------------------------------------------------------------

func (s *Server) getTransactionByHashHandler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	txHash, err := request.RequireString("txHash")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(s.client.TransactionByHash(ctx, s.chainID(request), txHash))
}

func (s *Server) getTransactionReceiptHandler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	txHash, err := request.RequireString("txHash")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(s.client.TransactionReceipt(ctx, s.chainID(request), txHash))
}

func (s *Server) getTransactionReceiptsHandler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raw, err := request.RequireString("txHashes")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(s.client.TransactionReceipts(ctx, s.chainID(request), splitList(raw)))
}

func (s *Server) getTransactionStatusHandler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	txHash, err := request.RequireString("txHash")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(s.client.TransactionStatus(ctx, s.chainID(request), txHash))
}

func (s *Server) getTransactionCountHandler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	address, err := request.RequireString("address")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	blockTag := request.GetString("blockTag", "")
	return jsonResult(s.client.TransactionCount(ctx, s.chainID(request), address, blockTag))
}

// ---------------------------------------------------------------------------
// block and chain tools
// ---------------------------------------------------------------------------

func (s *Server) blockNumberHandler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return jsonResult(s.client.BlockNumber(ctx, s.chainID(request)))
}

func (s *Server) getBlockByNumberHandler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	blockNumber := request.GetString("blockNumber", "")
	return jsonResult(s.client.BlockByNumber(ctx, s.chainID(request), blockNumber))
}

func (s *Server) blockNumberByTimestampHandler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	timestamp, err := request.RequireString("timestamp")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	closest := request.GetString("closest", "before")
	return jsonResult(s.client.BlockNumberByTimestamp(ctx, s.chainID(request), timestamp, closest))
}

func (s *Server) gasOracleHandler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return jsonResult(s.client.GasOracle(ctx, s.chainID(request)))
}

func (s *Server) eventLogsHandler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	filter := etherscan.LogFilter{
		Address:   request.GetString("address", ""),
		FromBlock: request.GetString("fromBlock", ""),
		ToBlock:   request.GetString("toBlock", ""),
		Topic0:    request.GetString("topic0", ""),
		Topic1:    request.GetString("topic1", ""),
		Page:      request.GetString("page", ""),
		Offset:    request.GetString("offset", ""),
	}
	if filter.Address == "" && filter.Topic0 == "" {
		return mcp.NewToolResultError("address or topic0 parameter is required"), nil
	}
	return jsonResult(s.client.EventLogs(ctx, s.chainID(request), filter))
}
