package v1

// dashboardPage is the single-page shell served at the root. It keeps every
// piece of filter state in the query string, so reloading or sharing the URL
// reproduces the exact same view.
const dashboardPage = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Library Lending Dashboard</title>
<style>
  body { margin: 0; font-family: "Segoe UI", Arial, sans-serif; background: #f4f6f8; color: #1f2937; }
  .layout { display: flex; min-height: 100vh; }
  .sidebar { width: 270px; background: #1f2937; color: #e5e7eb; padding: 20px; box-sizing: border-box; }
  .sidebar h2 { font-size: 16px; margin-top: 0; color: #fff; }
  .sidebar label { display: block; font-size: 13px; margin: 12px 0 4px; }
  .sidebar input[type=date] { width: 100%; padding: 4px; box-sizing: border-box; }
  .sidebar select { width: 100%; min-height: 72px; }
  .sidebar button { margin-top: 16px; width: 100%; padding: 8px; border: 0; background: #3b82f6; color: #fff; cursor: pointer; }
  .content { flex: 1; padding: 24px; }
  .metrics { display: flex; gap: 16px; flex-wrap: wrap; }
  .metric { background: #fff; border-radius: 6px; padding: 16px 24px; box-shadow: 0 1px 2px rgba(0,0,0,.08); }
  .metric .value { font-size: 28px; font-weight: 600; }
  .metric .label { font-size: 13px; color: #6b7280; }
  .charts { display: grid; grid-template-columns: repeat(auto-fill, minmax(420px, 1fr)); gap: 16px; margin-top: 24px; }
  .charts img { width: 100%; background: #fff; border-radius: 6px; box-shadow: 0 1px 2px rgba(0,0,0,.08); }
  table { border-collapse: collapse; width: 100%; background: #fff; margin-top: 24px; }
  th, td { border: 1px solid #e5e7eb; padding: 6px 10px; font-size: 13px; text-align: left; }
  th { background: #f9fafb; }
  #empty { display: none; margin-top: 24px; padding: 16px; background: #fef3c7; border-radius: 6px; }
  #export { margin-top: 16px; display: inline-block; padding: 8px 16px; background: #10b981; color: #fff; text-decoration: none; border-radius: 4px; }
</style>
</head>
<body>
<div class="layout">
  <aside class="sidebar">
    <h2>Filters</h2>
    <label for="from">Issued from</label>
    <input type="date" id="from">
    <label for="to">Issued to</label>
    <input type="date" id="to">
    <div id="categorical"></div>
    <button id="apply">Apply Filters</button>
  </aside>
  <main class="content">
    <h1>Library Lending Dashboard</h1>
    <div class="metrics" id="metrics"></div>
    <div id="empty">No records match the current filters.</div>
    <div class="charts" id="charts"></div>
    <a id="export" href="#">Download Filtered Data</a>
    <div id="table"></div>
  </main>
</div>
<script>
const basePath = {{.BasePath}};

const metricLabels = {
  total_issued: "Total Books Issued",
  unique_borrowers: "Unique Borrowers",
  not_returned: "Books Not Returned",
  late_returns: "Late Returns"
};

function currentQuery() {
  const params = new URLSearchParams();
  const from = document.getElementById("from").value;
  const to = document.getElementById("to").value;
  if (from) params.append("from", from);
  if (to) params.append("to", to);
  document.querySelectorAll("#categorical select").forEach(sel => {
    Array.from(sel.selectedOptions).forEach(opt => params.append(sel.dataset.column, opt.value));
  });
  return params.toString();
}

function renderFilters(options) {
  const container = document.getElementById("categorical");
  if (container.childElementCount > 0) {
    return;
  }
  if (options.date_min) document.getElementById("from").value = options.date_min.slice(0, 10);
  if (options.date_max) document.getElementById("to").value = options.date_max.slice(0, 10);
  (options.categories || []).forEach(cat => {
    const label = document.createElement("label");
    label.textContent = cat.label;
    const select = document.createElement("select");
    select.multiple = true;
    select.dataset.column = cat.column;
    cat.values.forEach(v => {
      const opt = document.createElement("option");
      opt.value = v;
      opt.textContent = v;
      opt.selected = true;
      select.appendChild(opt);
    });
    select.addEventListener("change", refresh);
    container.appendChild(label);
    container.appendChild(select);
  });
}

function renderMetrics(metrics) {
  const container = document.getElementById("metrics");
  container.innerHTML = "";
  Object.keys(metricLabels).forEach(key => {
    const card = document.createElement("div");
    card.className = "metric";
    card.innerHTML = '<div class="value">' + metrics[key] + '</div><div class="label">' + metricLabels[key] + '</div>';
    container.appendChild(card);
  });
}

function renderCharts(kinds, query) {
  const container = document.getElementById("charts");
  container.innerHTML = "";
  (kinds || []).forEach(kind => {
    const img = document.createElement("img");
    img.src = basePath + "/charts/" + kind + "?" + query;
    img.alt = kind;
    container.appendChild(img);
  });
}

function renderTable(records) {
  const container = document.getElementById("table");
  container.innerHTML = "";
  if (!records.columns || records.columns.length === 0) {
    return;
  }
  const table = document.createElement("table");
  const head = table.insertRow();
  records.columns.forEach(c => {
    const th = document.createElement("th");
    th.textContent = c;
    head.appendChild(th);
  });
  (records.rows || []).forEach(row => {
    const tr = table.insertRow();
    row.forEach(cell => { tr.insertCell().textContent = cell; });
  });
  container.appendChild(table);
}

async function refresh() {
  const query = currentQuery();
  const summary = await fetch(basePath + "/summary?" + query).then(r => r.json());
  renderFilters(summary.options || {});
  renderMetrics(summary.metrics || {});
  renderCharts(summary.charts, query);
  document.getElementById("empty").style.display = summary.empty ? "block" : "none";
  document.getElementById("export").href = basePath + "/export?" + query;
  const records = await fetch(basePath + "/records?" + query).then(r => r.json());
  renderTable(records);
}

document.getElementById("from").addEventListener("change", refresh);
document.getElementById("to").addEventListener("change", refresh);
document.getElementById("apply").addEventListener("click", refresh);
refresh();
</script>
</body>
</html>
`
